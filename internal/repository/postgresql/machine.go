package postgresql

import (
	"context"
	"errors"

	"github.com/allahdad01/construction-erp-go/internal/domain/machine"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type machineRepositoryImpl struct {
	db *database.DB
}

func NewMachineRepository(db *database.DB) machine.MachineRepository {
	return &machineRepositoryImpl{db: db}
}

const machineColumns = `id, company_id, code, name, model, status, daily_rate, created_at, updated_at`

func scanMachine(row pgx.Row) (machine.Machine, error) {
	var m machine.Machine
	err := row.Scan(&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Model, &m.Status, &m.DailyRate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return machine.Machine{}, machine.ErrMachineNotFound
		}
		return machine.Machine{}, err
	}
	return m, nil
}

// GetByID implements machine.MachineRepository.
func (r *machineRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1 AND company_id = $2`
	return scanMachine(q.QueryRow(ctx, query, id, companyID))
}

// Create implements machine.MachineRepository.
func (r *machineRepositoryImpl) Create(ctx context.Context, newMachine machine.Machine) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machines (company_id, code, name, model, status, daily_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + machineColumns

	return scanMachine(q.QueryRow(ctx, query,
		newMachine.CompanyID, newMachine.Code, newMachine.Name, newMachine.Model,
		newMachine.Status, newMachine.DailyRate,
	))
}

// Update implements machine.MachineRepository.
func (r *machineRepositoryImpl) Update(ctx context.Context, id string, companyID string, req machine.UpdateMachineRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE machines
		SET name = COALESCE($1, name),
			model = COALESCE($2, model),
			status = COALESCE($3, status),
			daily_rate = COALESCE($4, daily_rate),
			updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query, req.Name, req.Model, req.Status, req.ParsedDailyRate(), id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return machine.ErrMachineNotFound
	}
	return nil
}

// Delete implements machine.MachineRepository.
func (r *machineRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM machines WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return machine.ErrMachineNotFound
	}
	return nil
}

// List implements machine.MachineRepository.
func (r *machineRepositoryImpl) List(ctx context.Context, companyID string) ([]machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+machineColumns+` FROM machines WHERE company_id = $1 ORDER BY code`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var machines []machine.Machine
	for rows.Next() {
		var m machine.Machine
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Model, &m.Status, &m.DailyRate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, rows.Err()
}

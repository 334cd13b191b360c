package postgresql

import (
	"context"
	"errors"

	"github.com/allahdad01/construction-erp-go/internal/domain/rentalarea"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rentalAreaRepositoryImpl struct {
	db *database.DB
}

func NewRentalAreaRepository(db *database.DB) rentalarea.AreaRepository {
	return &rentalAreaRepositoryImpl{db: db}
}

const areaColumns = `id, company_id, code, name, location, monthly_rent, status, created_at, updated_at`

func scanArea(row pgx.Row) (rentalarea.RentalArea, error) {
	var a rentalarea.RentalArea
	err := row.Scan(&a.ID, &a.CompanyID, &a.Code, &a.Name, &a.Location, &a.MonthlyRent, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rentalarea.RentalArea{}, rentalarea.ErrAreaNotFound
		}
		return rentalarea.RentalArea{}, err
	}
	return a, nil
}

// GetByID implements rentalarea.AreaRepository.
func (r *rentalAreaRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (rentalarea.RentalArea, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + areaColumns + ` FROM rental_areas WHERE id = $1 AND company_id = $2`
	return scanArea(q.QueryRow(ctx, query, id, companyID))
}

// ExistsByName implements rentalarea.AreaRepository.
func (r *rentalAreaRepositoryImpl) ExistsByName(ctx context.Context, companyID string, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rental_areas WHERE company_id = $1 AND LOWER(name) = LOWER($2))`,
		companyID, name,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements rentalarea.AreaRepository.
func (r *rentalAreaRepositoryImpl) Create(ctx context.Context, newArea rentalarea.RentalArea) (rentalarea.RentalArea, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rental_areas (company_id, code, name, location, monthly_rent, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + areaColumns

	return scanArea(q.QueryRow(ctx, query,
		newArea.CompanyID, newArea.Code, newArea.Name, newArea.Location,
		newArea.MonthlyRent, newArea.Status,
	))
}

// Update implements rentalarea.AreaRepository.
func (r *rentalAreaRepositoryImpl) Update(ctx context.Context, id string, companyID string, req rentalarea.UpdateAreaRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rental_areas
		SET name = COALESCE($1, name),
			location = COALESCE($2, location),
			status = COALESCE($3, status),
			monthly_rent = COALESCE($4, monthly_rent),
			updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query, req.Name, req.Location, req.Status, req.ParsedMonthlyRent(), id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return rentalarea.ErrAreaNotFound
	}
	return nil
}

// Delete implements rentalarea.AreaRepository.
func (r *rentalAreaRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rental_areas WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return rentalarea.ErrAreaNotFound
	}
	return nil
}

// List implements rentalarea.AreaRepository.
func (r *rentalAreaRepositoryImpl) List(ctx context.Context, companyID string) ([]rentalarea.RentalArea, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+areaColumns+` FROM rental_areas WHERE company_id = $1 ORDER BY code`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []rentalarea.RentalArea
	for rows.Next() {
		var a rentalarea.RentalArea
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.Code, &a.Name, &a.Location, &a.MonthlyRent, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

package machine

import (
	"context"
	"fmt"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/domain/machine"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/codes"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type MachineServiceImpl struct {
	db          *database.DB
	machineRepo machine.MachineRepository
	companyRepo company.CompanyRepository
	counterRepo company.CounterRepository
}

func NewMachineService(
	db *database.DB,
	machineRepo machine.MachineRepository,
	companyRepo company.CompanyRepository,
	counterRepo company.CounterRepository,
) machine.MachineService {
	return &MachineServiceImpl{
		db:          db,
		machineRepo: machineRepo,
		companyRepo: companyRepo,
		counterRepo: counterRepo,
	}
}

func mapMachineToResponse(m machine.Machine) machine.MachineResponse {
	return machine.MachineResponse{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Code:      m.Code,
		Name:      m.Name,
		Model:     m.Model,
		Status:    string(m.Status),
		DailyRate: m.DailyRate,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Create implements machine.MachineService.
func (s *MachineServiceImpl) Create(ctx context.Context, ident auth.Identity, req machine.CreateMachineRequest) (machine.MachineResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.MachineResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return machine.MachineResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return machine.MachineResponse{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return machine.MachineResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	var created machine.Machine
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		seq, err := s.counterRepo.Next(txCtx, companyID, string(codes.ResourceMachine))
		if err != nil {
			return fmt.Errorf("failed to allocate machine code: %w", err)
		}

		created, err = s.machineRepo.Create(txCtx, machine.Machine{
			CompanyID: companyID,
			Code:      codes.Format(comp.Code, codes.ResourceMachine, seq),
			Name:      req.Name,
			Model:     req.Model,
			Status:    machine.StatusAvailable,
			DailyRate: req.ParsedDailyRate(),
		})
		if err != nil {
			return fmt.Errorf("failed to create machine: %w", err)
		}
		return nil
	})
	if err != nil {
		return machine.MachineResponse{}, err
	}
	return mapMachineToResponse(created), nil
}

// Get implements machine.MachineService.
func (s *MachineServiceImpl) Get(ctx context.Context, ident auth.Identity, id string) (machine.MachineResponse, error) {
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return machine.MachineResponse{}, err
	}

	m, err := s.machineRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return machine.MachineResponse{}, err
	}
	return mapMachineToResponse(m), nil
}

// List implements machine.MachineService.
func (s *MachineServiceImpl) List(ctx context.Context, ident auth.Identity) ([]machine.MachineResponse, error) {
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return nil, err
	}

	machines, err := s.machineRepo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}

	responses := make([]machine.MachineResponse, 0, len(machines))
	for _, m := range machines {
		responses = append(responses, mapMachineToResponse(m))
	}
	return responses, nil
}

// Update implements machine.MachineService.
func (s *MachineServiceImpl) Update(ctx context.Context, ident auth.Identity, id string, req machine.UpdateMachineRequest) (machine.MachineResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.MachineResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return machine.MachineResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return machine.MachineResponse{}, err
	}

	if err := s.machineRepo.Update(ctx, id, companyID, req); err != nil {
		return machine.MachineResponse{}, err
	}

	m, err := s.machineRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return machine.MachineResponse{}, fmt.Errorf("failed to get updated machine: %w", err)
	}
	return mapMachineToResponse(m), nil
}

// Delete implements machine.MachineService.
func (s *MachineServiceImpl) Delete(ctx context.Context, ident auth.Identity, id string) error {
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return err
	}
	return s.machineRepo.Delete(ctx, id, companyID)
}

package rentalarea

import (
	"context"
	"fmt"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/domain/rentalarea"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/codes"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AreaServiceImpl struct {
	db          *database.DB
	areaRepo    rentalarea.AreaRepository
	companyRepo company.CompanyRepository
	counterRepo company.CounterRepository
}

func NewAreaService(
	db *database.DB,
	areaRepo rentalarea.AreaRepository,
	companyRepo company.CompanyRepository,
	counterRepo company.CounterRepository,
) rentalarea.AreaService {
	return &AreaServiceImpl{
		db:          db,
		areaRepo:    areaRepo,
		companyRepo: companyRepo,
		counterRepo: counterRepo,
	}
}

func mapAreaToResponse(a rentalarea.RentalArea) rentalarea.AreaResponse {
	return rentalarea.AreaResponse{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		Code:        a.Code,
		Name:        a.Name,
		Location:    a.Location,
		MonthlyRent: a.MonthlyRent,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Create implements rentalarea.AreaService. Area names are unique within a
// company, case-insensitively.
func (s *AreaServiceImpl) Create(ctx context.Context, ident auth.Identity, req rentalarea.CreateAreaRequest) (rentalarea.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return rentalarea.AreaResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return rentalarea.AreaResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return rentalarea.AreaResponse{}, err
	}

	exists, err := s.areaRepo.ExistsByName(ctx, companyID, req.Name)
	if err != nil {
		return rentalarea.AreaResponse{}, fmt.Errorf("failed to check area name: %w", err)
	}
	if exists {
		return rentalarea.AreaResponse{}, rentalarea.ErrAreaNameExists
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return rentalarea.AreaResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	var created rentalarea.RentalArea
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		seq, err := s.counterRepo.Next(txCtx, companyID, string(codes.ResourceRentalArea))
		if err != nil {
			return fmt.Errorf("failed to allocate area code: %w", err)
		}

		created, err = s.areaRepo.Create(txCtx, rentalarea.RentalArea{
			CompanyID:   companyID,
			Code:        codes.Format(comp.Code, codes.ResourceRentalArea, seq),
			Name:        req.Name,
			Location:    req.Location,
			MonthlyRent: req.ParsedMonthlyRent(),
			Status:      rentalarea.StatusVacant,
		})
		if err != nil {
			return fmt.Errorf("failed to create rental area: %w", err)
		}
		return nil
	})
	if err != nil {
		return rentalarea.AreaResponse{}, err
	}
	return mapAreaToResponse(created), nil
}

// Get implements rentalarea.AreaService.
func (s *AreaServiceImpl) Get(ctx context.Context, ident auth.Identity, id string) (rentalarea.AreaResponse, error) {
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return rentalarea.AreaResponse{}, err
	}

	a, err := s.areaRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return rentalarea.AreaResponse{}, err
	}
	return mapAreaToResponse(a), nil
}

// List implements rentalarea.AreaService.
func (s *AreaServiceImpl) List(ctx context.Context, ident auth.Identity) ([]rentalarea.AreaResponse, error) {
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return nil, err
	}

	areas, err := s.areaRepo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rental areas: %w", err)
	}

	responses := make([]rentalarea.AreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, mapAreaToResponse(a))
	}
	return responses, nil
}

// Update implements rentalarea.AreaService.
func (s *AreaServiceImpl) Update(ctx context.Context, ident auth.Identity, id string, req rentalarea.UpdateAreaRequest) (rentalarea.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return rentalarea.AreaResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return rentalarea.AreaResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return rentalarea.AreaResponse{}, err
	}

	if req.Name != nil {
		current, err := s.areaRepo.GetByID(ctx, id, companyID)
		if err != nil {
			return rentalarea.AreaResponse{}, err
		}
		if current.Name != *req.Name {
			exists, err := s.areaRepo.ExistsByName(ctx, companyID, *req.Name)
			if err != nil {
				return rentalarea.AreaResponse{}, fmt.Errorf("failed to check area name: %w", err)
			}
			if exists {
				return rentalarea.AreaResponse{}, rentalarea.ErrAreaNameExists
			}
		}
	}

	if err := s.areaRepo.Update(ctx, id, companyID, req); err != nil {
		return rentalarea.AreaResponse{}, err
	}

	a, err := s.areaRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return rentalarea.AreaResponse{}, fmt.Errorf("failed to get updated rental area: %w", err)
	}
	return mapAreaToResponse(a), nil
}

// Delete implements rentalarea.AreaService.
func (s *AreaServiceImpl) Delete(ctx context.Context, ident auth.Identity, id string) error {
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return err
	}
	return s.areaRepo.Delete(ctx, id, companyID)
}

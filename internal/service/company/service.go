package company

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/allahdad01/construction-erp-go/internal/pkg/password"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// New tenants start on a trial of this length.
const trialPeriod = 30 * 24 * time.Hour

type CompanyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
	userRepo    user.UserRepository
}

func NewCompanyService(
	db *database.DB,
	companyRepo company.CompanyRepository,
	userRepo user.UserRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

func mapCompanyToResponse(comp company.Company) company.CompanyResponse {
	resp := company.CompanyResponse{
		ID:                 comp.ID,
		Code:               comp.Code,
		Name:               comp.Name,
		SubscriptionStatus: string(comp.SubscriptionStatus),
		CreatedAt:          comp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if comp.TrialEndsAt != nil {
		trialEndsAt := comp.TrialEndsAt.Format("2006-01-02")
		resp.TrialEndsAt = &trialEndsAt
	}
	return resp
}

// Register implements company.CompanyService. The company row and its admin
// user are created in one transaction.
func (s *CompanyServiceImpl) Register(ctx context.Context, req company.RegisterCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	exists, err := s.companyRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check company code: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrCompanyCodeExists
	}

	emailExists, err := s.userRepo.ExistsByEmail(ctx, req.AdminEmail)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if emailExists {
		return company.CompanyResponse{}, user.ErrEmailExists
	}

	passwordHash, err := password.Hash(req.AdminPassword)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to hash admin password: %w", err)
	}

	var createdCompany company.Company

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		trialEndsAt := time.Now().UTC().Add(trialPeriod)
		created, err := s.companyRepo.Create(txCtx, company.Company{
			Code:               req.Code,
			Name:               req.Name,
			SubscriptionStatus: company.StatusTrial,
			TrialEndsAt:        &trialEndsAt,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		createdCompany = created

		_, err = s.userRepo.Create(txCtx, user.User{
			CompanyID:    &created.ID,
			Email:        req.AdminEmail,
			PasswordHash: &passwordHash,
			Role:         user.RoleCompanyAdmin,
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		return nil
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	slog.Info("company registered", "company_id", createdCompany.ID, "code", createdCompany.Code)
	return mapCompanyToResponse(createdCompany), nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, ident auth.Identity, companyID string) (company.CompanyResponse, error) {
	if err := auth.RequireCompany(ident, companyID); err != nil {
		return company.CompanyResponse{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return mapCompanyToResponse(comp), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, ident auth.Identity, companyID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := auth.RequireCompany(ident, companyID); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.companyRepo.Update(ctx, companyID, req.Name); err != nil {
		return company.CompanyResponse{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to get updated company: %w", err)
	}
	return mapCompanyToResponse(comp), nil
}

// List implements company.CompanyService. Platform operators only.
func (s *CompanyServiceImpl) List(ctx context.Context, ident auth.Identity) ([]company.CompanyResponse, error) {
	if !ident.IsSuperAdmin() {
		return nil, auth.ErrForbidden
	}

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		responses = append(responses, mapCompanyToResponse(comp))
	}
	return responses, nil
}

// RequireOperational implements company.CompanyService. A lapsed trial is
// downgraded on read so the stored status catches up with the clock.
func (s *CompanyServiceImpl) RequireOperational(ctx context.Context, companyID string) error {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if comp.CanOperate(now) {
		return nil
	}

	if comp.SubscriptionStatus == company.StatusTrial {
		if err := s.companyRepo.UpdateSubscription(ctx, companyID, company.StatusExpired); err != nil {
			slog.Warn("failed to expire lapsed trial", "company_id", companyID, "error", err)
		}
	}
	return company.ErrSubscriptionExpired
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/dashboard"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

// Stats implements dashboard.DashboardService. The month window runs from the
// first of the asOf month through asOf itself.
func (s *DashboardServiceImpl) Stats(ctx context.Context, ident auth.Identity, asOf time.Time) (dashboard.Stats, error) {
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return dashboard.Stats{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return dashboard.Stats{}, err
	}

	asOf = asOf.UTC().Truncate(24 * time.Hour)
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stats dashboard.Stats
	if stats.ActiveEmployees, err = s.dashboardRepo.CountActiveEmployees(ctx, companyID); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count active employees: %w", err)
	}
	if stats.Machines, err = s.dashboardRepo.CountMachines(ctx, companyID); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count machines: %w", err)
	}
	if stats.RentalAreas, err = s.dashboardRepo.CountRentalAreas(ctx, companyID); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count rental areas: %w", err)
	}
	if stats.EarnedThisMonth, err = s.dashboardRepo.SumEarnedBetween(ctx, companyID, monthStart, asOf); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to sum earned amounts: %w", err)
	}
	if stats.PaidThisMonth, err = s.dashboardRepo.SumPaidBetween(ctx, companyID, monthStart, asOf); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to sum paid amounts: %w", err)
	}
	return stats, nil
}

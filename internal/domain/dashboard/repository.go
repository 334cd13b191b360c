package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context, companyID string) (int64, error)
	CountMachines(ctx context.Context, companyID string) (int64, error)
	CountRentalAreas(ctx context.Context, companyID string) (int64, error)
	// SumEarnedBetween sums dailyRate * presentDays across active employees.
	SumEarnedBetween(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error)
	SumPaidBetween(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error)
}

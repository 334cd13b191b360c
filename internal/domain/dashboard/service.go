package dashboard

import (
	"context"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type DashboardService interface {
	Stats(ctx context.Context, ident auth.Identity, asOf time.Time) (Stats, error)
}

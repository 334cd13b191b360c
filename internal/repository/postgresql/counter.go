package postgresql

import (
	"context"
	"fmt"

	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
)

type counterRepositoryImpl struct {
	db *database.DB
}

func NewCounterRepository(db *database.DB) company.CounterRepository {
	return &counterRepositoryImpl{db: db}
}

// Next increments and returns the per-company sequence for a resource type.
// The upsert is a single statement, so two concurrent onboarding requests
// for the same company can never read the same value.
func (r *counterRepositoryImpl) Next(ctx context.Context, companyID string, resourceType string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO resource_counters (company_id, resource_type, last_value, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (company_id, resource_type) DO UPDATE
		SET last_value = resource_counters.last_value + 1, updated_at = NOW()
		RETURNING last_value
	`

	var next int64
	if err := q.QueryRow(ctx, query, companyID, resourceType).Scan(&next); err != nil {
		return 0, fmt.Errorf("next counter for %s/%s: %w", companyID, resourceType, err)
	}
	return next, nil
}

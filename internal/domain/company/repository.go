package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetByCode(ctx context.Context, code string) (Company, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, id string, name string) error
	UpdateSubscription(ctx context.Context, id string, status SubscriptionStatus) error
	List(ctx context.Context) ([]Company, error)
}

// CounterRepository hands out the next sequence number for a resource code.
// The increment is a single atomic upsert so concurrent onboarding for the
// same company can never observe the same value.
type CounterRepository interface {
	Next(ctx context.Context, companyID string, resourceType string) (int64, error)
}

package company

import (
	"context"
	"testing"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	companies map[string]company.Company
	updated   map[string]company.SubscriptionStatus
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: make(map[string]company.Company),
		updated:   make(map[string]company.SubscriptionStatus),
	}
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByCode(_ context.Context, code string) (company.Company, error) {
	for _, c := range f.companies {
		if c.Code == code {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, err := f.GetByCode(context.Background(), code)
	return err == nil, nil
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	c.ID = "comp-" + c.Code
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, id string, name string) error {
	c, ok := f.companies[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	c.Name = name
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) UpdateSubscription(_ context.Context, id string, status company.SubscriptionStatus) error {
	f.updated[id] = status
	return nil
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func TestRequireOperationalActiveCompany(t *testing.T) {
	repo := newFakeCompanyRepo()
	repo.companies["comp-1"] = company.Company{
		ID: "comp-1", SubscriptionStatus: company.StatusActive,
	}
	svc := &CompanyServiceImpl{companyRepo: repo}

	assert.NoError(t, svc.RequireOperational(context.Background(), "comp-1"))
}

func TestRequireOperationalTrialWithinWindow(t *testing.T) {
	repo := newFakeCompanyRepo()
	trialEndsAt := time.Now().UTC().Add(24 * time.Hour)
	repo.companies["comp-1"] = company.Company{
		ID: "comp-1", SubscriptionStatus: company.StatusTrial, TrialEndsAt: &trialEndsAt,
	}
	svc := &CompanyServiceImpl{companyRepo: repo}

	assert.NoError(t, svc.RequireOperational(context.Background(), "comp-1"))
}

func TestRequireOperationalLapsedTrialIsDowngraded(t *testing.T) {
	repo := newFakeCompanyRepo()
	trialEndsAt := time.Now().UTC().Add(-24 * time.Hour)
	repo.companies["comp-1"] = company.Company{
		ID: "comp-1", SubscriptionStatus: company.StatusTrial, TrialEndsAt: &trialEndsAt,
	}
	svc := &CompanyServiceImpl{companyRepo: repo}

	err := svc.RequireOperational(context.Background(), "comp-1")
	require.ErrorIs(t, err, company.ErrSubscriptionExpired)

	// The stored status catches up with the clock.
	assert.Equal(t, company.StatusExpired, repo.updated["comp-1"])
}

func TestRequireOperationalSuspendedCompany(t *testing.T) {
	repo := newFakeCompanyRepo()
	repo.companies["comp-1"] = company.Company{
		ID: "comp-1", SubscriptionStatus: company.StatusSuspended,
	}
	svc := &CompanyServiceImpl{companyRepo: repo}

	err := svc.RequireOperational(context.Background(), "comp-1")
	assert.ErrorIs(t, err, company.ErrSubscriptionExpired)
	// Suspension is an operator action, never auto-downgraded.
	assert.Empty(t, repo.updated)
}

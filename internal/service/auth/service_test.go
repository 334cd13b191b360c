package auth

import (
	"context"
	"testing"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/jwt"
	"github.com/allahdad01/construction-erp-go/internal/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeRefreshTokenRepo struct {
	issued  []string
	revoked map[string]bool
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{revoked: make(map[string]bool)}
}

func (f *fakeRefreshTokenRepo) Create(_ context.Context, _ string, token string, _ int64, _ auth.SessionTrackingRequest) error {
	f.issued = append(f.issued, token)
	return nil
}

func (f *fakeRefreshTokenRepo) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeRefreshTokenRepo) Revoke(_ context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func newServiceWithUser(t *testing.T, u user.User) (auth.AuthService, *fakeRefreshTokenRepo) {
	t.Helper()

	tokens := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(
		&fakeUserRepo{users: map[string]user.User{u.Email: u}},
		&fakeEmployeeRepo{},
		tokens,
		jwtService,
	)
	return svc, tokens
}

func activeAdmin(t *testing.T, plainPassword string) user.User {
	t.Helper()

	hash, err := password.Hash(plainPassword)
	require.NoError(t, err)
	companyID := "comp-1"
	return user.User{
		ID:           "user-1",
		CompanyID:    &companyID,
		Email:        "admin@example.com",
		PasswordHash: &hash,
		Role:         user.RoleCompanyAdmin,
		IsActive:     true,
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, tokens := newServiceWithUser(t, activeAdmin(t, "winter-mist-42"))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "winter-mist-42",
	}, auth.SessionTrackingRequest{IPAddress: "10.0.0.1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Len(t, tokens.issued, 1)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newServiceWithUser(t, activeAdmin(t, "winter-mist-42"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "not-the-password",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmailMatchesWrongPassword(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	svc, _ := newServiceWithUser(t, activeAdmin(t, "winter-mist-42"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	u := activeAdmin(t, "winter-mist-42")
	u.IsActive = false
	svc, _ := newServiceWithUser(t, u)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "winter-mist-42",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, tokens := newServiceWithUser(t, activeAdmin(t, "winter-mist-42"))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "winter-mist-42",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.AccessToken)
	assert.True(t, tokens.revoked[login.RefreshToken], "presented token must be retired")

	// The retired token cannot be replayed.
	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newServiceWithUser(t, activeAdmin(t, "winter-mist-42"))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "winter-mist-42",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutWithoutTokenIsNoop(t *testing.T) {
	svc, tokens := newServiceWithUser(t, activeAdmin(t, "winter-mist-42"))

	require.NoError(t, svc.Logout(context.Background(), auth.RefreshTokenRequest{}))
	assert.Empty(t, tokens.revoked)
}

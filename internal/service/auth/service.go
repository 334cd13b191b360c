package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/jwt"
	"github.com/allahdad01/construction-erp-go/internal/pkg/password"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	employeeRepo     employee.EmployeeRepository
	refreshTokenRepo postgresql.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	refreshTokenRepo postgresql.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		employeeRepo:     employeeRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var employeeID *string
	emp, err := s.employeeRepo.GetByUserID(ctx, u.ID)
	switch {
	case err == nil:
		employeeID = &emp.ID
	case errors.Is(err, employee.ErrEmployeeNotFound):
		// Admins and renters have no employee record.
	default:
		return auth.TokenResponse{}, fmt.Errorf("failed to resolve employee record: %w", err)
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, employeeID, u.CompanyID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Create(ctx, u.ID, refreshToken, refreshExpiresAt, session); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

// Login implements auth.AuthService. Unknown email and wrong password produce
// the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}
	if u.PasswordHash == nil || password.Compare(*u.PasswordHash, req.Password) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	tokens, err := s.issueTokens(ctx, u, session)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("user logged in", "user_id", u.ID, "role", u.Role, "ip", session.IPAddress)
	return tokens, nil
}

// Refresh implements auth.AuthService. The used refresh token is revoked and
// a fresh pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry (pass raw token, not hash)
	revoked, err := s.refreshTokenRepo.IsRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check if refresh token is revoked: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by id: %w", err)
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotation: the presented token is retired before the new pair exists.
	if err := s.refreshTokenRepo.Revoke(ctx, req.RefreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, u, session)
}

// Logout implements auth.AuthService. Revoking an already revoked or unknown
// token is not an error.
func (s *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if req.RefreshToken == "" {
		return nil
	}
	return s.refreshTokenRepo.Revoke(ctx, req.RefreshToken)
}

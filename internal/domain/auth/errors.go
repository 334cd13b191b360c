package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or malformed token")
	ErrTokenExpired         = errors.New("token expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrForbidden            = errors.New("insufficient role for this operation")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrCompanyScopeRequired = errors.New("company scope required")
)

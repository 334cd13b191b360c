package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrUserInactive          = errors.New("user account is deactivated")
	ErrCompanyIDRequired     = errors.New("user has no company assigned")
	ErrAdminAccessRequired   = errors.New("company admin access required")
	ErrPlatformAdminRequired = errors.New("platform admin access required")
)

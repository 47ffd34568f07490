package application

import "errors"

// Flow outcomes. Handlers map each to a fixed status code and message; the
// *Failed sentinels stand in for any unexpected cause, which is logged but
// never returned to callers.
var (
	ErrBadInput           = errors.New("username and password are required")
	ErrInvalidInvite      = errors.New("invalid invite code")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrRegistrationFailed = errors.New("registration failed")
	ErrLoginFailed        = errors.New("login failed")
	ErrLoadFailed         = errors.New("failed to load account")
)

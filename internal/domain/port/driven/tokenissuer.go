package driven

import "errors"

// Sentinel errors returned by TokenIssuer.Validate. Each maps to a distinct
// caller-visible response.
var (
	// ErrMissingAuthorization indicates no token was presented.
	ErrMissingAuthorization = errors.New("missing authorization")

	// ErrTokenExpired indicates a well-formed, correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenMalformed covers bad structure, bad signature, unexpected
	// algorithm, and missing subject.
	ErrTokenMalformed = errors.New("token is malformed")
)

// TokenIssuer mints and validates stateless bearer tokens carrying a subject.
// There is no revocation: expiry is the only way a token stops working.
type TokenIssuer interface {
	Issue(subject string) (string, error)
	Validate(token string) (string, error)
}

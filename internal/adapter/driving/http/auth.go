package httphandler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// Fixed 401 messages, one per token failure kind.
const (
	msgMissingAuthorization = "missing authorization header"
	msgTokenExpired         = "token has expired"
	msgTokenInvalid         = "invalid token"
)

// requireToken validates the bearer token before dispatching to next and
// stores the token subject in the request context.
func (h *Handler) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err == nil {
			var subject string
			subject, err = h.tokens.Validate(token)
			if err == nil {
				next(w, r.WithContext(context.WithValue(r.Context(), subjectKey, subject)))
				return
			}
		}

		switch {
		case errors.Is(err, driven.ErrMissingAuthorization):
			writeError(w, http.StatusUnauthorized, msgMissingAuthorization)
		case errors.Is(err, driven.ErrTokenExpired):
			writeError(w, http.StatusUnauthorized, msgTokenExpired)
		default:
			writeError(w, http.StatusUnauthorized, msgTokenInvalid)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// A missing header or empty token yields driven.ErrMissingAuthorization; any
// other scheme or shape yields driven.ErrTokenMalformed.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" || strings.EqualFold(header, "Bearer") {
		return "", driven.ErrMissingAuthorization
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", driven.ErrTokenMalformed
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", driven.ErrMissingAuthorization
	}

	return token, nil
}

// subjectFrom returns the token subject stored by requireToken.
func subjectFrom(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

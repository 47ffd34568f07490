package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/invitegate/internal/application"
	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// maxBodyBytes caps request bodies; credentials never need more.
const maxBodyBytes = 1 << 20

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	authSvc    *application.AuthService
	accountSvc *application.AccountService
	tokens     driven.TokenIssuer
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	authSvc *application.AuthService,
	accountSvc *application.AccountService,
	tokens driven.TokenIssuer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authSvc:    authSvc,
		accountSvc: accountSvc,
		tokens:     tokens,
		logger:     logger,
		now:        time.Now,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with recovery, CORS and logging middleware.
func NewServeMux(h *Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /time", h.Time)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /home", h.requireToken(h.Home))
	mux.HandleFunc("POST /logout", h.requireToken(h.Logout))

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = corsMiddleware(allowedOrigins, wrapped)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Time returns the server's current Unix time in fractional seconds.
func (h *Handler) Time(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, TimeResponse{
		Time: float64(now.UnixNano()) / float64(time.Second),
	})
}

// Register creates an account behind the invite code.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, application.ErrBadInput.Error())
		return
	}

	err := h.authSvc.Register(r.Context(), application.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		InviteCode: req.InviteCode,
	})
	if err != nil {
		h.writeFlowError(w, err, application.ErrRegistrationFailed)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "user registered successfully"})
}

// Login verifies credentials and returns a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, application.ErrBadInput.Error())
		return
	}

	res, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeFlowError(w, err, application.ErrLoginFailed)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message:     "login successful",
		AccessToken: res.AccessToken,
		User:        toUserResponse(res.User),
	})
}

// Home reports the caller's account and statistics.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.accountSvc.Home(r.Context(), subjectFrom(r.Context()))
	if err != nil {
		h.writeFlowError(w, err, application.ErrLoadFailed)
		return
	}

	writeJSON(w, http.StatusOK, HomeResponse{
		Message: fmt.Sprintf("welcome, %s", home.User.Username),
		User:    toUserResponse(home.User),
		Stats:   toStatsResponse(home.Stats),
	})
}

// Logout acknowledges the request. Tokens are stateless, so nothing is revoked
// and the token remains valid until it expires.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out successfully"})
}

// writeFlowError maps a flow sentinel to its status code. Anything unrecognised
// is reported as the flow's generic failure.
func (h *Handler) writeFlowError(w http.ResponseWriter, err, fallback error) {
	switch {
	case errors.Is(err, application.ErrBadInput):
		writeError(w, http.StatusBadRequest, application.ErrBadInput.Error())
	case errors.Is(err, application.ErrInvalidInvite):
		writeError(w, http.StatusForbidden, application.ErrInvalidInvite.Error())
	case errors.Is(err, application.ErrUsernameExists):
		writeError(w, http.StatusConflict, application.ErrUsernameExists.Error())
	case errors.Is(err, application.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, application.ErrInvalidCredentials.Error())
	case errors.Is(err, application.ErrUserNotFound):
		writeError(w, http.StatusNotFound, application.ErrUserNotFound.Error())
	default:
		if !errors.Is(err, fallback) {
			h.logger.Error("unmapped flow error", "error", err)
		}
		writeError(w, http.StatusInternalServerError, fallback.Error())
	}
}

// decodeBody decodes a JSON object from the request body. An empty body
// decodes to the zero value so the flow can report missing fields itself.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

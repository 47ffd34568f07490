package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the body of endpoints that only acknowledge.
type messageResponse struct {
	Message string `json:"message"`
}

// TimeResponse is the JSON representation of the time endpoint.
type TimeResponse struct {
	Time float64 `json:"time"`
}

// RegisterRequest is the JSON body for the register endpoint.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	InviteCode string `json:"invite_code"`
}

// LoginRequest is the JSON body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is the JSON body returned on successful login.
type LoginResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// StatsResponse is the JSON representation of account statistics.
type StatsResponse struct {
	TotalTransactions int `json:"total_transactions"`
}

// HomeResponse is the JSON body of the session-gated home endpoint.
type HomeResponse struct {
	Message string        `json:"message"`
	User    UserResponse  `json:"user"`
	Stats   StatsResponse `json:"stats"`
}

// toUserResponse converts a domain User to its JSON response representation.
func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}

// toStatsResponse converts domain AccountStats to its JSON response representation.
func toStatsResponse(s model.AccountStats) StatsResponse {
	return StatsResponse{
		TotalTransactions: s.TotalTransactions,
	}
}

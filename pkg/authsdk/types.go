package authsdk

import "time"

// ErrorResponse is the wire form of an error body.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// CredentialsRequest is the body of POST /register and POST /login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest is the body of POST /refresh_access_token and DELETE /logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse is returned by register, login and refresh_access_token.
// RefreshToken is empty on renewal; the renewal credential is not reissued.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// WhoamiResponse is the identity claim echoed by GET /test_auth_middleware.
type WhoamiResponse struct {
	UserID string `json:"userID"`
}

// Note is a single stored note.
type Note struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateNoteRequest is the body of POST /secret_message.
type CreateNoteRequest struct {
	Message string `json:"message"`
}

// CreateNoteResponse carries the id of the stored note.
type CreateNoteResponse struct {
	ID string `json:"id"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks holds per-dependency results (readyz only)
	Checks map[string]string `json:"checks,omitempty"`
}

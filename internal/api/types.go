package api

import "github.com/medichat/medichat-client/internal/domain"

// Response schemas, one per endpoint. Decoding happens at this boundary so
// screens never touch half-filled payloads.

type signupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// The new account's id arrives beside the user object, not inside it.
type signupResponse struct {
	Token  string       `json:"token"`
	UserID string       `json:"user_id"`
	User   *domain.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Response string `json:"response"`
}

// Report uploads answer with either a summary (PDF/image reports) or a
// plain response (audio messages).
type medicalReportResponse struct {
	Summary  string `json:"summary"`
	Response string `json:"response"`
}

type imageAnalysisResponse struct {
	Message  string `json:"message"`
	Analysis string `json:"analysis"`
}

type adminUploadResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Profile *domain.Profile `json:"profile"`
}

type errorResponse struct {
	Error string `json:"error"`
}

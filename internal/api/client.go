package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
)

// NetworkFailureMessage is what users see when the backend is unreachable
const NetworkFailureMessage = "An error occurred while processing your request. Please try again later."

// TokenSource provides the bearer token for authenticated calls. The
// session store implements it.
type TokenSource interface {
	Token() string
}

// Client is a single-attempt HTTP client for the MediChat backend. No
// retry, no backoff: failures surface to the calling screen, which decides
// what to show.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates an API client. A zero timeout leaves requests bounded
// only by their context, matching the backend's long-running analysis
// endpoints.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme: %s (only http/https allowed)", parsed.Scheme)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}, nil
}

// Signup creates an account and returns the new user with its token
func (c *Client) Signup(ctx context.Context, username, email, password, confirmPassword string) (*domain.User, string, error) {
	var out signupResponse
	err := c.postJSON(ctx, "/api/signup", signupRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}, false, "Failed to sign up", &out)
	if err != nil {
		return nil, "", err
	}
	if out.Token == "" || out.User == nil {
		return nil, "", apperrors.NewDecodeError(fmt.Errorf("missing token or user"), "/api/signup")
	}
	out.User.ID = out.UserID
	return out.User, out.Token, nil
}

// Login authenticates and returns the user with its token. The backend
// echoes username and user id only; the email comes from the request.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/api/login", loginRequest{Email: email, Password: password},
		false, "Login failed", &out)
	if err != nil {
		return nil, "", err
	}
	if out.Token == "" {
		return nil, "", apperrors.NewDecodeError(fmt.Errorf("missing token"), "/api/login")
	}
	return &domain.User{ID: out.UserID, Username: out.Username, Email: email}, out.Token, nil
}

// AdminLogin authenticates an administrator
func (c *Client) AdminLogin(ctx context.Context, email, password string) (string, bool, error) {
	var out adminLoginResponse
	err := c.postJSON(ctx, "/api/admin_login", adminLoginRequest{Email: email, Password: password},
		false, "Failed to log in", &out)
	if err != nil {
		return "", false, err
	}
	if out.Token == "" {
		return "", false, apperrors.NewDecodeError(fmt.Errorf("missing token"), "/api/admin_login")
	}
	return out.Token, out.IsAdmin, nil
}

// Logout asks the server to drop the session. Best-effort: the local
// session is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/logout", nil)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError(err, NetworkFailureMessage)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Server-side logout failed", "status", resp.StatusCode)
	}
	return nil
}

// Ask sends one chat message and returns the assistant reply markup
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	var out askResponse
	err := c.postJSON(ctx, "/api/ask", askRequest{Message: message},
		true, "Failed to get a response. Please try again.", &out)
	if err != nil {
		return "", err
	}
	if out.Response == "" {
		return "", apperrors.NewDecodeError(fmt.Errorf("missing response field"), "/api/ask")
	}
	return out.Response, nil
}

// UploadMedicalReport sends a pending attachment for analysis and returns
// the summary text (or the plain response for audio messages).
func (c *Client) UploadMedicalReport(ctx context.Context, att *domain.Attachment) (string, error) {
	var out medicalReportResponse
	err := c.postMultipart(ctx, "/api/upload-medical-report", att, nil,
		"Failed to process the file. Please try again.", &out)
	if err != nil {
		return "", err
	}
	if out.Summary != "" {
		return out.Summary, nil
	}
	if out.Response != "" {
		return out.Response, nil
	}
	return "", apperrors.NewDecodeError(fmt.Errorf("missing summary and response"), "/api/upload-medical-report")
}

// UploadImage sends a food image and returns the detection message plus the
// nutrition analysis markup.
func (c *Client) UploadImage(ctx context.Context, att *domain.Attachment) (string, string, error) {
	var out imageAnalysisResponse
	err := c.postMultipart(ctx, "/api/upload-image", att, nil,
		"Failed to analyze the image.", &out)
	if err != nil {
		return "", "", err
	}
	if out.Message == "" {
		return "", "", apperrors.NewDecodeError(fmt.Errorf("missing message field"), "/api/upload-image")
	}
	return out.Message, out.Analysis, nil
}

// UploadAdminPDF uploads a PDF into a named document collection. The
// backend accepts "Admin" or "food_analyse".
func (c *Client) UploadAdminPDF(ctx context.Context, att *domain.Attachment, collection string) (string, error) {
	var out adminUploadResponse
	err := c.postMultipart(ctx, "/api/upload", att, map[string]string{"collection": collection},
		"Failed to upload PDF", &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

// GetProfile fetches the stored medical profile
func (c *Client) GetProfile(ctx context.Context) (*domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/profile", nil)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	c.authorize(req)

	var out profileResponse
	if err := c.do(req, "Failed to fetch profile", &out); err != nil {
		return nil, err
	}
	if out.Profile == nil {
		return nil, apperrors.NewDecodeError(fmt.Errorf("missing profile field"), "/api/profile")
	}
	return out.Profile, nil
}

// SaveProfile posts the profile wholesale
func (c *Client) SaveProfile(ctx context.Context, p *domain.Profile) error {
	var out struct {
		Message string `json:"message"`
	}
	return c.postJSON(ctx, "/api/profile", p, true, "Failed to save profile", &out)
}

func (c *Client) authorize(req *http.Request) {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, authed bool, fallback string, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		c.authorize(req)
	}

	return c.do(req, fallback, out)
}

func (c *Client) postMultipart(ctx context.Context, path string, att *domain.Attachment, fields map[string]string, fallback string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", att.Name)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if _, err := part.Write(att.Data); err != nil {
		return apperrors.NewInternalError(err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return apperrors.NewInternalError(err)
		}
	}
	if err := writer.Close(); err != nil {
		return apperrors.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	return c.do(req, fallback, out)
}

// do issues the request once and decodes the response. Non-2xx responses
// become API errors carrying the backend's error message when the body has
// one, or the endpoint's fallback message when it does not.
func (c *Client) do(req *http.Request, fallback string, out interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Request failed", "path", req.URL.Path, "error", err)
		return apperrors.NewNetworkError(err, NetworkFailureMessage)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkError(err, NetworkFailureMessage)
	}

	logger.Debug("Request completed",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewAPIError(resp.StatusCode, extractError(body, fallback))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return apperrors.NewDecodeError(err, req.URL.Path)
		}
	}
	return nil
}

// extractError pulls the backend's error message out of a failure body,
// falling back to the endpoint's generic message for non-JSON or malformed
// bodies.
func extractError(body []byte, fallback string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return fallback
	}
	return errResp.Error
}

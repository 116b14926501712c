package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
)

func init() {
	_ = logger.InitWithConfig(logger.Config{Level: logger.LevelError, OutputPath: "stderr", Format: "text"})
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 0, staticToken(token))
	require.NoError(t, err)
	return client
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		// user_id is a Mongo ObjectId rendered as a string
		_, _ = w.Write([]byte(`{"message":"Login successful","user_id":"665f1c2a9f1b4c3d2e1a0b9c","username":"alice","token":"tok-1","profileCompleted":true}`))
	}), "")

	user, token, err := client.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "665f1c2a9f1b4c3d2e1a0b9c", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestClient_Login_APIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid email or password"}`))
	}), "")

	_, _, err := client.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeAPI, apperrors.TypeOf(err))
	assert.Equal(t, "Invalid email or password", apperrors.UserMessage(err))
}

func TestClient_Ask_BearerInjection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-xyz", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"response":"<p>Drink water.</p>"}`))
	}), "tok-xyz")

	reply, err := client.Ask(context.Background(), "any tips?")
	require.NoError(t, err)
	assert.Equal(t, "<p>Drink water.</p>", reply)
}

func TestClient_Ask_MalformedErrorBodyFallsBack(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>boom</html>`))
	}), "tok")

	_, err := client.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeAPI, apperrors.TypeOf(err))
	assert.Equal(t, "Failed to get a response. Please try again.", apperrors.UserMessage(err))
}

func TestClient_Ask_MalformedSuccessBodyIsDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}), "tok")

	_, err := client.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeDecode, apperrors.TypeOf(err))
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening any more

	client, err := NewClient(srv.URL, 0, staticToken(""))
	require.NoError(t, err)

	_, _, err = client.Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNetwork, apperrors.TypeOf(err))
	assert.Equal(t, NetworkFailureMessage, apperrors.UserMessage(err))
}

func TestClient_UploadMedicalReport_Multipart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.pdf", header.Filename)
		_, _ = w.Write([]byte(`{"summary":"<p>All values normal.</p>"}`))
	}), "tok")

	att := &domain.Attachment{Name: "report.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}
	summary, err := client.UploadMedicalReport(context.Background(), att)
	require.NoError(t, err)
	assert.Equal(t, "<p>All values normal.</p>", summary)
}

func TestClient_UploadMedicalReport_ResponseFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"<p>Audio transcribed.</p>"}`))
	}), "tok")

	att := &domain.Attachment{Name: "note.wav", MIMEType: "audio/wav", Data: []byte("RIFF")}
	summary, err := client.UploadMedicalReport(context.Background(), att)
	require.NoError(t, err)
	assert.Equal(t, "<p>Audio transcribed.</p>", summary)
}

func TestClient_UploadAdminPDF_CollectionField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "food_analyse", r.FormValue("collection"))
		_, _ = w.Write([]byte(`{"message":"PDF processed into food_analyse"}`))
	}), "admin-tok")

	att := &domain.Attachment{Name: "diet.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}
	msg, err := client.UploadAdminPDF(context.Background(), att, "food_analyse")
	require.NoError(t, err)
	assert.Equal(t, "PDF processed into food_analyse", msg)
}

func TestClient_ProfileRoundTrip(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"profile":{"personal_information":{"full_name":"Alice Doe","gender":"female"},"medical_history":{"allergies":["penicillin"]}}}`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"message":"Profile saved successfully"}`))
		}
	}), "tok")

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", profile.PersonalInformation.FullName)
	assert.Equal(t, []string{"penicillin"}, profile.MedicalHistory.Allergies)

	require.NoError(t, client.SaveProfile(context.Background(), profile))
}

func TestClient_Signup(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the new account's id sits beside the user object
		_, _ = w.Write([]byte(`{"message":"User created successfully","user_id":"665f1c2a9f1b4c3d2e1a0b9d","token":"tok-new","user":{"username":"bob","email":"bob@example.com","profileCompleted":false}}`))
	}), "")

	user, token, err := client.Signup(context.Background(), "bob", "bob@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	assert.Equal(t, "665f1c2a9f1b4c3d2e1a0b9d", user.ID)
	assert.Equal(t, "bob", user.Username)
}

func TestClient_AdminLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin_login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"admin-tok","isAdmin":true}`))
	}), "")

	token, isAdmin, err := client.AdminLogin(context.Background(), "root@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, isAdmin)
	assert.Equal(t, "admin-tok", token)
}

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftelite/onboarding-go/internal/api"
	"github.com/draftelite/onboarding-go/internal/api/response"
	"github.com/draftelite/onboarding-go/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	t.Cleanup(app.Flows.Close)

	router := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Flows:  app.Flows,
		Auth:   app.Auth,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, deviceID string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) flow(t *testing.T, deviceID string) response.FlowResponse {
	t.Helper()

	rr := ts.request(http.MethodGet, "/api/v1/flow", nil, deviceID)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.FlowResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// flowSettled polls until the background profile check has landed.
func (ts *testServer) flowSettled(t *testing.T, deviceID string) response.FlowResponse {
	t.Helper()

	require.Eventually(t, func() bool {
		return ts.flow(t, deviceID).Screen != "loading"
	}, time.Second, 5*time.Millisecond)
	return ts.flow(t, deviceID)
}

func (ts *testServer) finishOnboarding(t *testing.T, deviceID string) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/flow/onboarding/complete", nil, deviceID)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestFreshDeviceSeesOnboarding(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.flow(t, "phone-1")
	assert.Equal(t, "onboarding", resp.Screen)

	ts.finishOnboarding(t, "phone-1")
	assert.Equal(t, "login", ts.flow(t, "phone-1").Screen)

	// Another device has not dismissed it
	assert.Equal(t, "onboarding", ts.flow(t, "phone-2").Screen)
}

func TestPlayerSignupOverAPI(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")

	rr := ts.request(http.MethodPost, "/api/v1/flow/signup", nil, "phone-1")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/flow/account-type", map[string]string{"account_type": "player"}, "phone-1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "player_signup_account", ts.flow(t, "phone-1").Screen)

	body := map[string]string{
		"full_name":        "Jordan Price",
		"date_of_birth":    "2004-03-10",
		"email":            "jordan@example.com",
		"password":         "password123",
		"confirm_password": "password123",
	}
	rr = ts.request(http.MethodPost, "/api/v1/auth/signup/player", body, "phone-1")
	require.Equal(t, http.StatusCreated, rr.Code)

	var account response.AccountData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &account))
	assert.Equal(t, "Jordan Price", account.FullName)
	assert.NotEmpty(t, account.UserID)

	assert.Equal(t, "player_profile_setup", ts.flow(t, "phone-1").Screen)

	profileBody := map[string]string{
		"position":       "Forward",
		"location":       "Dublin",
		"nationality":    "Irish",
		"preferred_foot": "right",
	}
	rr = ts.request(http.MethodPost, "/api/v1/profiles/player", profileBody, "phone-1")
	require.Equal(t, http.StatusNoContent, rr.Code)

	assert.Equal(t, "signup_complete", ts.flow(t, "phone-1").Screen)
	assert.Equal(t, 1, ts.app.MemStore.Count())
}

func TestValidationMessagePassesThrough(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")
	ts.request(http.MethodPost, "/api/v1/flow/signup", nil, "phone-1")
	ts.request(http.MethodPost, "/api/v1/flow/account-type", map[string]string{"account_type": "player"}, "phone-1")

	body := map[string]string{
		"full_name":        "Jordan Price",
		"date_of_birth":    "2004-03-10",
		"email":            "jordan@example.com",
		"password":         "short",
		"confirm_password": "short",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signup/player", body, "phone-1")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Password must be at least 8 characters.")
}

func TestUnderagePlayerRejectedOverAPI(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")
	ts.request(http.MethodPost, "/api/v1/flow/signup", nil, "phone-1")
	ts.request(http.MethodPost, "/api/v1/flow/account-type", map[string]string{"account_type": "player"}, "phone-1")

	body := map[string]string{
		"full_name":        "Sam Young",
		"date_of_birth":    "2012-03-10",
		"email":            "sam@example.com",
		"password":         "password123",
		"confirm_password": "password123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signup/player", body, "phone-1")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNDERAGE_PLAYER")

	// Bounced back to account-type selection
	assert.Equal(t, "select_account_type", ts.flow(t, "phone-1").Screen)
}

func TestComingSoonAccountTypes(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")
	ts.request(http.MethodPost, "/api/v1/flow/signup", nil, "phone-1")

	rr := ts.request(http.MethodPost, "/api/v1/flow/account-type", map[string]string{"account_type": "coach"}, "phone-1")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ACCOUNT_TYPE_COMING_SOON")

	// Selection remains active
	assert.Equal(t, "select_account_type", ts.flow(t, "phone-1").Screen)
}

func TestLoginAndProfileRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")

	_, err := ts.app.MemAuth.SignUp(context.Background(), "alex@example.com", "password123", map[string]string{
		"full_name":     "Alex Doe",
		"date_of_birth": "2000-01-15",
		"role":          "player",
	})
	require.NoError(t, err)

	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "alex@example.com",
		"password": "password123",
	}, "phone-1")
	require.Equal(t, http.StatusOK, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, "alex@example.com", session.Email)
	assert.Equal(t, "player", session.Role)

	// No profile row yet: setup screen with prefill from metadata
	resp := ts.flowSettled(t, "phone-1")
	assert.Equal(t, "player_profile_setup", resp.Screen)
	require.NotNil(t, resp.Prefill)
	assert.Equal(t, "Alex Doe", resp.Prefill.FullName)

	profileBody := map[string]string{
		"position":       "Defender",
		"location":       "Galway",
		"nationality":    "Irish",
		"height":         "182",
		"preferred_foot": "both",
	}
	rr = ts.request(http.MethodPost, "/api/v1/profiles/player", profileBody, "phone-1")
	require.Equal(t, http.StatusNoContent, rr.Code)

	assert.Equal(t, "home", ts.flow(t, "phone-1").Screen)

	rr = ts.request(http.MethodGet, "/api/v1/profiles/me", nil, "phone-1")
	require.Equal(t, http.StatusOK, rr.Code)

	var prof response.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prof))
	assert.Equal(t, "Alex Doe", prof.FullName)
	require.NotNil(t, prof.HeightCm)
	assert.Equal(t, 182, *prof.HeightCm)
}

func TestBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")

	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "password123",
	}, "phone-1")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CREDENTIALS")
}

func TestProfileMeWithoutSession(t *testing.T) {
	ts := newTestServer(t)
	ts.finishOnboarding(t, "phone-1")

	rr := ts.request(http.MethodGet, "/api/v1/profiles/me", nil, "phone-1")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

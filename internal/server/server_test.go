package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/polish"
	"github.com/jonathan/resume-site/internal/session"
	"github.com/jonathan/resume-site/internal/store"
)

const testPassword = "k1h2a3n4"

func newTestServer(t *testing.T, polisher *polish.Service) (*Server, *store.Store) {
	t.Helper()

	backend, err := store.NewFileBackend(filepath.Join(t.TempDir(), "resume.json"))
	require.NoError(t, err)

	st := store.Open(context.Background(), backend)
	sessions := session.NewManager(&config.Config{AdminPassword: testPassword})
	if polisher == nil {
		polisher = polish.NewService(context.Background(), "")
	}

	s, err := New(Config{Port: 0}, st, sessions, polisher)
	require.NoError(t, err)
	return s, st
}

// doJSON sends a request through the full middleware chain and returns the
// recorded response.
func doJSON(t *testing.T, s *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// login performs the full dialog flow and returns a bearer token.
func login(t *testing.T, s *Server) string {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/session/dialog", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/auth/login", LoginRequest{Password: testPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[LoginResponse](t, rec)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, rec))
}

func TestGetResume(t *testing.T) {
	s, st := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/resume", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, st.Document().Summary, got["summary"])
	assert.Contains(t, got, "introVideoUrl")
}

func TestPage(t *testing.T) {
	s, st := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), st.Document().PersonalInfo.Name)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/resume", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoginFlow(t *testing.T) {
	s, _ := newTestServer(t, nil)

	// Opening the dialog does not grant anything.
	rec := doJSON(t, s, http.MethodPost, "/session/dialog", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody[session.State](t, rec)
	assert.True(t, state.ShowLogin)
	assert.False(t, state.IsAdmin)

	// Wrong password: 401, dialog stays open.
	rec = doJSON(t, s, http.MethodPost, "/auth/login", LoginRequest{Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/session", nil, "")
	state = decodeBody[session.State](t, rec)
	assert.True(t, state.ShowLogin)
	assert.False(t, state.IsAdmin)

	// Correct password: token plus admin session in edit mode.
	rec = doJSON(t, s, http.MethodPost, "/auth/login", LoginRequest{Password: testPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[LoginResponse](t, rec)
	assert.NotEmpty(t, resp.Token)

	rec = doJSON(t, s, http.MethodGet, "/session", nil, "")
	state = decodeBody[session.State](t, rec)
	assert.True(t, state.IsAdmin)
	assert.True(t, state.IsEditing)
	assert.False(t, state.ShowLogin)
}

func TestLogin_MissingPassword(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/auth/login", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelLogin(t *testing.T) {
	s, _ := newTestServer(t, nil)

	doJSON(t, s, http.MethodPost, "/session/dialog", nil, "")
	rec := doJSON(t, s, http.MethodDelete, "/session/dialog", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeBody[session.State](t, rec)
	assert.False(t, state.ShowLogin)
}

func TestMutation_RequiresToken(t *testing.T) {
	s, _ := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/resume/summary"},
		{http.MethodPost, "/resume/experience"},
		{http.MethodDelete, "/resume/experience/1"},
		{http.MethodPost, "/resume/achievements"},
		{http.MethodPost, "/polish"},
		{http.MethodPost, "/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doJSON(t, s, tt.method, tt.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestMutation_RejectsGarbageToken(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPut, "/resume/summary", SetFieldRequest{Value: "x"}, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_KillsOutstandingToken(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token := login(t, s)

	rec := doJSON(t, s, http.MethodPost, "/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token still parses, but the session is no longer admin.
	rec = doJSON(t, s, http.MethodPut, "/resume/summary", SetFieldRequest{Value: "x"}, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToggleEditing(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token := login(t, s)

	rec := doJSON(t, s, http.MethodPost, "/session/editing", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody[session.State](t, rec)
	assert.True(t, state.IsAdmin)
	assert.False(t, state.IsEditing)

	rec = doJSON(t, s, http.MethodPost, "/session/editing", nil, token)
	state = decodeBody[session.State](t, rec)
	assert.True(t, state.IsEditing)
}

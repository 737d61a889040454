package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/snapshot"
	"jackut/internal/store"
	"jackut/internal/transport/http/handlers"
	"jackut/internal/transport/http/middleware"
	"jackut/internal/transport/ws"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	snap, err := snapshot.Open(filepath.Join(t.TempDir(), "jackut.db"))
	require.NoError(t, err)
	t.Cleanup(func() { snap.Close() })

	hub := ws.NewHub()
	go hub.Run()

	h := handlers.New(store.New(), snap, hub, testSecret)
	auth := middleware.Auth(testSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users", h.CreateUser)
	mux.HandleFunc("POST /api/v1/sessions", h.OpenSession)
	mux.HandleFunc("GET /api/v1/users/{login}/friends", h.GetFriends)
	mux.Handle("POST /api/v1/friends", auth(http.HandlerFunc(h.AddFriend)))
	mux.Handle("POST /api/v1/messages", auth(http.HandlerFunc(h.SendMessage)))
	mux.Handle("POST /api/v1/messages/read", auth(http.HandlerFunc(h.ReadMessage)))
	mux.Handle("POST /api/v1/system/reset", auth(http.HandlerFunc(h.Reset)))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func register(t *testing.T, srv *httptest.Server, login, password, name string) string {
	t.Helper()

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/users", "",
		`{"login":"`+login+`","password":"`+password+`","name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/sessions", "",
		`{"login":"`+login+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, status)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestFriendshipOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	mariaTok := register(t, srv, "maria", "123456", "Maria")
	joaoTok := register(t, srv, "joao", "654321", "Joao")

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/friends", mariaTok, `{"login":"joao"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["confirmed"])

	status, body = doJSON(t, srv, http.MethodPost, "/api/v1/friends", joaoTok, `{"login":"maria"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["confirmed"])

	status, body = doJSON(t, srv, http.MethodGet, "/api/v1/users/maria/friends", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "{joao}", body["friends"])
}

func TestMessagingOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	mariaTok := register(t, srv, "maria", "123456", "Maria")
	joaoTok := register(t, srv, "joao", "654321", "Joao")

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/messages", mariaTok,
		`{"recipient":"joao","content":"oi"}`)
	assert.Equal(t, http.StatusNoContent, status)

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/messages/read", joaoTok, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "oi", body["content"])

	status, body = doJSON(t, srv, http.MethodPost, "/api/v1/messages/read", joaoTok, "")
	assert.Equal(t, http.StatusNotFound, status)
	errObj, _ := body["error"].(map[string]any)
	assert.Equal(t, "EMPTY_INBOX", errObj["code"])
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/friends", "", `{"login":"joao"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestResetRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	mariaTok := register(t, srv, "maria", "123456", "Maria")

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/system/reset", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// The store is untouched by the rejected call.
	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/sessions", "",
		`{"login":"maria","password":"123456"}`)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body["access_token"])

	status, _ = doJSON(t, srv, http.MethodPost, "/api/v1/system/reset", mariaTok, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = doJSON(t, srv, http.MethodPost, "/api/v1/sessions", "",
		`{"login":"maria","password":"123456"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestCreateUserValidation(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/users", "",
		`{"login":"","password":"x","name":"Nobody"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	errObj, _ := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

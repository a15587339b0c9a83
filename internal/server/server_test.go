package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/logger"
	"github.com/jonathan/placement-prep/internal/metrics"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/jonathan/placement-prep/internal/users"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDist creates a build directory with the given files.
func writeDist(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o600))
	}
	return dir
}

func testConfig(t *testing.T, staticDir string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.StaticDir = staticDir
	cfg.Auth.BcryptCost = 10
	cfg.RateLimit.CleanupInterval = 0
	return cfg
}

func newTestServer(t *testing.T) (*Server, users.Store) {
	t.Helper()
	dir := writeDist(t, map[string]string{
		"index.html":    "<html>app</html>",
		"assets/app.js": "console.log('hi')",
	})
	store := users.NewMemStore()
	s, err := New(testConfig(t, dir), store, logger.NewTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s, store
}

func do(t *testing.T, s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_MissingStaticDir(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "nope"))
	_, err := New(cfg, users.NewMemStore(), logger.NewNoOpLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find the build directory")
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodGet, "/health", nil)

	w := do(t, s, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "placement_http_requests_total")
}

func TestRequestMetricsUseRoutePattern(t *testing.T) {
	s, _ := newTestServer(t)
	counter := metrics.HTTPRequests.WithLabelValues("GET", "GET /health", "200")
	before := testutil.ToFloat64(counter)

	do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSPA(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("existing file", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/assets/app.js", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "console.log")
	})

	t.Run("root", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<html>app</html>")
	})

	t.Run("client route falls back to index", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/results?id=abc", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<html>app</html>")
	})

	t.Run("index.html served directly", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/index.html", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<html>app</html>")
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	})

	t.Run("directory falls back to index", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/assets", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<html>app</html>")
	})

	t.Run("traversal stays inside root", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/../../etc/passwd", nil)
		assert.NotContains(t, w.Body.String(), "root:")
	})
}

func TestSPA_MissingIndex(t *testing.T) {
	dir := writeDist(t, map[string]string{"favicon.ico": "x"})
	s, err := New(testConfig(t, dir), users.NewMemStore(), logger.NewNoOpLogger())
	require.NoError(t, err)
	defer s.rateLimiter.Stop()

	w := do(t, s, http.MethodGet, "/anything", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "index.html not found")

	w = do(t, s, http.MethodGet, "/favicon.ico", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUser(t *testing.T) {
	s, _ := newTestServer(t)

	body, _ := json.Marshal(types.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	w := do(t, s, http.MethodPost, "/api/users", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice", user["username"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, user, "password")
}

func TestCreateUser_StoresHash(t *testing.T) {
	s, store := newTestServer(t)

	body, _ := json.Marshal(types.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/api/users", body).Code)

	stored, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.Password)
	assert.True(t, s.userService.passwordConfig.VerifyPassword("correct-horse", stored.Password))
}

func TestCreateUser_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/users", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, _ := json.Marshal(types.CreateUserRequest{Username: "al", Password: "correct-horse"})
	w = do(t, s, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username")

	body, _ = json.Marshal(types.CreateUserRequest{Username: "alice", Password: "short"})
	w = do(t, s, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, _ = json.Marshal(types.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/api/users", body).Code)
	w = do(t, s, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUser(t *testing.T) {
	s, store := newTestServer(t)
	created, err := store.CreateUser(context.Background(), "alice", "hash")
	require.NoError(t, err)

	w := do(t, s, http.MethodGet, "/api/users/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.NotContains(t, w.Body.String(), "hash")

	w = do(t, s, http.MethodGet, "/api/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/api/users/0b6e3a1c-8f0e-4e43-9a7c-6a3f2f1e0d11", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserByUsername(t *testing.T) {
	s, store := newTestServer(t)
	_, err := store.CreateUser(context.Background(), "alice", "hash")
	require.NoError(t, err)

	w := do(t, s, http.MethodGet, "/api/users/by-username?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	w = do(t, s, http.MethodGet, "/api/users/by-username?username=bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/api/users/by-username", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, s, http.MethodOptions, "/api/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	dir := writeDist(t, map[string]string{"index.html": "x"})
	cfg := testConfig(t, dir)
	cfg.RateLimit.DefaultLimit = 2
	cfg.RateLimit.DefaultWindow = time.Hour

	s, err := New(cfg, users.NewMemStore(), logger.NewNoOpLogger())
	require.NoError(t, err)
	defer s.rateLimiter.Stop()

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodGet, "/page", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodGet, "/page", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", nil).Code, "health is never limited")
}

func TestServe_GracefulShutdown(t *testing.T) {
	s, _ := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec,noctx // test URL
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

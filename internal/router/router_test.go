package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/config"
	"github.com/kennelhouse/kennel-backend/internal/handler"
	"github.com/kennelhouse/kennel-backend/internal/middleware"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/kennelhouse/kennel-backend/internal/repository/memory"
	"github.com/kennelhouse/kennel-backend/internal/service"
	"github.com/kennelhouse/kennel-backend/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testUsername = "breeder"
	testPassword = "hunter2"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

func testConfig() *config.Config {
	return &config.Config{
		GinMode:     gin.TestMode,
		RoleHeader:  "X-User-Role",
		DefaultRole: string(model.RoleGuest),
	}
}

// newTestRouter wires the full stack on top of repos. A nil repos gets a
// fresh in-memory set with one admin account.
func newTestRouter(t *testing.T, repos *repository.Repositories) *gin.Engine {
	t.Helper()
	if repos == nil {
		repos = memory.New(nil)
	}

	log := zerolog.Nop()
	authService := service.NewAuthService(repos.Users, log)
	if _, err := authService.CreateUser(context.Background(), testUsername, testPassword, model.RoleAdmin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	cfg := testConfig()
	handlers := &Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Dog:     handler.NewDogHandler(service.NewDogService(repos.Dogs, log)),
		Litter:  handler.NewLitterHandler(service.NewLitterService(repos.Litters, log)),
		Gallery: handler.NewGalleryHandler(service.NewGalleryService(repos.Gallery, log)),
		Message: handler.NewMessageHandler(service.NewMessageService(repos.Messages, log)),
	}
	az := middleware.NewHeaderAuthorizer(cfg.RoleHeader, model.Role(cfg.DefaultRole))
	return SetupRouter(cfg, handlers, az, log)
}

// request describes one call against the router.
type request struct {
	method string
	path   string
	body   string
	role   string
	header map[string]string
}

func serve(t *testing.T, r *gin.Engine, req request) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if req.body != "" {
		body = bytes.NewBufferString(req.body)
	}
	httpReq := httptest.NewRequest(req.method, req.path, body)
	if req.body != "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.role != "" {
		httpReq.Header.Set("X-User-Role", req.role)
	}
	for k, v := range req.header {
		httpReq.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// createAs posts body to path as admin and returns the new id.
func createAs(t *testing.T, r *gin.Engine, path, body string) int {
	t.Helper()
	w := serve(t, r, request{method: http.MethodPost, path: path, body: body, role: "admin"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(t, w)
	require.Equal(t, true, out["success"])
	return int(out["id"].(float64))
}

func list(t *testing.T, r *gin.Engine, path, key, role string) []interface{} {
	t.Helper()
	w := serve(t, r, request{method: http.MethodGet, path: path, role: role})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items, ok := decode(t, w)[key].([]interface{})
	require.True(t, ok, "expected %q to be a list: %s", key, w.Body.String())
	return items
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

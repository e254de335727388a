package gateway

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(name string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"handler": name, "domain": DomainOf(ctx), "id": Segment(ctx, 0), "sub": Segment(ctx, 1)})
	}
}

func newTestRouter() *fiber.App {
	r := NewRouter("test-service")
	r.Root(named("root"))
	r.Domain("session", named("session-list")).
		Root("GET", named("list")).
		Handle("POST", "create", 1, named("create")).
		Handle("GET", "status", 1, named("status")).
		Param("GET", named("read")).
		Param("POST", named("update"))
	r.Domain("mobile", named("mobile-info")).
		Handle("GET", "continue", 2, named("continue"))

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler("test-service", logger.NewNopLogger())})
	r.Mount(app)
	return app
}

func call(t *testing.T, app *fiber.App, method, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRouter_Dispatch(t *testing.T) {
	app := newTestRouter()

	tests := []struct {
		method, path string
		wantHandler  string
		wantId       string
	}{
		{"GET", "/", "root", ""},
		{"GET", "/session", "list", ""},
		{"GET", "/session/", "list", ""},
		{"POST", "/session/create", "create", "create"},
		{"GET", "/session/status", "status", "status"},
		{"GET", "/session/session-abc", "read", "session-abc"},
		{"POST", "/session/session-abc", "update", "session-abc"},
		{"GET", "/mobile/continue/handoff-1", "continue", "continue"},
		// Unmatched combinations fall back to the domain default.
		{"DELETE", "/session/session-abc", "session-list", "session-abc"},
		{"GET", "/session/a/b/c", "session-list", "a"},
		{"POST", "/session", "session-list", ""},
		{"GET", "/mobile/continue", "mobile-info", "continue"},
		{"GET", "/mobile", "mobile-info", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			status, body := call(t, app, tt.method, tt.path)
			assert.Equal(t, 200, status)
			assert.Equal(t, tt.wantHandler, body["handler"])
			assert.Equal(t, tt.wantId, body["id"])
		})
	}
}

func TestRouter_ContinueSubSegment(t *testing.T) {
	_, body := call(t, newTestRouter(), "GET", "/mobile/continue/handoff-1")
	assert.Equal(t, "mobile", body["domain"])
	assert.Equal(t, "handoff-1", body["sub"])
}

func TestRouter_UnknownDomain(t *testing.T) {
	status, body := call(t, newTestRouter(), "GET", "/nope/x")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Route not found", body["error"])
	assert.Equal(t, "test-service", body["service"])
	assert.Equal(t, "/nope/x", body["path"])
}

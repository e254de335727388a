package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"chitty-gateway/internal/gateway"
	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func healthBody(t *testing.T, pinger StoragePinger) map[string]interface{} {
	t.Helper()
	r := gateway.NewRouter("test-service")
	NewHealthController(HealthInfo{
		ServiceName: "test-service",
		Version:     "test",
		StorageMode: "remote",
		QueueMode:   "in-process",
	}, pinger, nil).RegisterRoutes(r)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler("test-service", logger.NewNopLogger())})
	r.Mount(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHealth_ReportsStorageReachability(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantKV string
	}{
		{"reachable", nil, "connected"},
		{"unreachable", errors.New("dial tcp: connection refused"), "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := healthBody(t, stubPinger{err: tt.err})
			assert.Equal(t, tt.wantKV, body["kvStore"])
			assert.Equal(t, "remote", body["storage"])
			assert.Equal(t, "disabled", body["database"])
		})
	}
}

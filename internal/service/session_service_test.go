package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionIdPattern = regexp.MustCompile(`^session-[0-9a-z]+-[0-9a-f]{9}$`)

func newSessionService(f *fixture) *sessionService {
	svc := NewSessionService(f.sessions, logger.NewNopLogger()).(*sessionService)
	svc.now = steppingClock(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	return svc
}

func TestSessionService_Create(t *testing.T) {
	tests := []struct {
		name         string
		payload      map[string]interface{}
		wantPlatform string
	}{
		{"empty payload", nil, entity.DefaultPlatform},
		{"explicit platform", map[string]interface{}{"platform": "claude-web"}, "claude-web"},
		{"blank platform", map[string]interface{}{"platform": ""}, entity.DefaultPlatform},
		{"caller status ignored", map[string]interface{}{"status": "closed"}, entity.DefaultPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSessionService(newFixture(nil))

			session, err := svc.Create(context.Background(), tt.payload)
			require.NoError(t, err)

			assert.Regexp(t, sessionIdPattern, session.Id)
			assert.Equal(t, tt.wantPlatform, session.Platform)
			assert.Equal(t, entity.SessionStatusActive, session.Status)
			assert.True(t, session.CreatedAt.Equal(session.LastActivity))
		})
	}
}

func TestSessionService_CreateKeepsCallerFields(t *testing.T) {
	svc := newSessionService(newFixture(nil))

	created, err := svc.Create(context.Background(), map[string]interface{}{"project": "chitty", "turns": 3})
	require.NoError(t, err)

	stored, err := svc.Show(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Equal(t, "chitty", stored.Attributes["project"])
	assert.Equal(t, float64(3), stored.Attributes["turns"])
}

func TestSessionService_ShowUnknown(t *testing.T) {
	svc := newSessionService(newFixture(nil))

	_, err := svc.Show(context.Background(), "session-never-written")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_ShowIsIdempotent(t *testing.T) {
	svc := newSessionService(newFixture(nil))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{"z": 1, "a": []interface{}{"x", "y"}})
	require.NoError(t, err)

	first, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	second, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestSessionService_UpdateMergesShallow(t *testing.T) {
	svc := newSessionService(newFixture(nil))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{"a": 1, "b": 2})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, map[string]interface{}{"b": 3, "c": 4})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"a": float64(1), "b": 3, "c": 4}, updated.Attributes)
	assert.True(t, updated.LastActivity.After(created.LastActivity))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.Equal(t, created.Id, updated.Id)
}

func TestSessionService_UpdateUnknown(t *testing.T) {
	svc := newSessionService(newFixture(nil))

	_, err := svc.Update(context.Background(), "session-missing", map[string]interface{}{"a": 1})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_RemoteFailureSurfaces(t *testing.T) {
	remote := newMemRemote()
	svc := newSessionService(newFixture(remote))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	boom := errors.New("remote unavailable")
	remote.getErr = boom

	_, err = svc.Show(ctx, created.Id)
	assert.ErrorIs(t, err, boom)
}

// Updates do read-merge-write without a version check. Two updates whose
// reads interleave both write back their own view, and one patch is lost.
func TestSessionService_ConcurrentUpdatesLoseData(t *testing.T) {
	remote := newMemRemote()
	svc := newSessionService(newFixture(remote))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	remote.arm(2)

	var wg sync.WaitGroup
	for _, patch := range []map[string]interface{}{{"a": 1}, {"b": 2}} {
		wg.Add(1)
		go func(p map[string]interface{}) {
			defer wg.Done()
			_, err := svc.Update(ctx, created.Id, p)
			assert.NoError(t, err)
		}(patch)
	}
	wg.Wait()
	remote.disarm()

	final, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)

	_, hasA := final.Attributes["a"]
	_, hasB := final.Attributes["b"]
	assert.True(t, hasA != hasB, "exactly one concurrent patch survives, got %v", final.Attributes)
}

func TestSessionService_ListIsEmptyStub(t *testing.T) {
	svc := newSessionService(newFixture(nil))
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	res, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Sessions)
	assert.Equal(t, 0, res.Total)
}

func TestSessionService_SyncEchoes(t *testing.T) {
	svc := newSessionService(newFixture(nil))

	res, err := svc.Sync(context.Background(), map[string]interface{}{"sessionId": "session-1"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "session-1", res.Data["sessionId"])

	res, err = svc.Sync(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, res.Data)
}

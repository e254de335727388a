package service

import (
	"context"
	"sync"
	"time"

	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/internal/repository/implementation"
	"chitty-gateway/internal/repository/storage"
)

// steppingClock returns a clock that advances by one millisecond per call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Millisecond)
		return current
	}
}

type fixture struct {
	store       *storage.Storage
	sessions    contract.SessionRepository
	handoffs    contract.HandoffRepository
	quickStarts contract.QuickStartRepository
	records     contract.RecordRepository
}

func newFixture(remote contract.RemoteBackend) *fixture {
	store := storage.New(remote, logger.NewNopLogger())
	return &fixture{
		store:       store,
		sessions:    implementation.NewSessionRepository(store),
		handoffs:    implementation.NewHandoffRepository(store),
		quickStarts: implementation.NewQuickStartRepository(store),
		records:     implementation.NewRecordRepository(store),
	}
}

// memRemote is an in-memory remote backend. While barrier is set, every Get
// waits until all expected readers have arrived before returning.
type memRemote struct {
	mu      sync.Mutex
	data    map[string][]byte
	barrier *sync.WaitGroup
	getErr  error
}

func newMemRemote() *memRemote {
	return &memRemote{data: map[string][]byte{}}
}

func (m *memRemote) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	value, ok := m.data[key]
	barrier := m.barrier
	getErr := m.getErr
	m.mu.Unlock()

	if barrier != nil {
		barrier.Done()
		barrier.Wait()
	}
	if getErr != nil {
		return nil, false, getErr
	}
	return value, ok, nil
}

func (m *memRemote) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memRemote) Ping(context.Context) error { return nil }

func (m *memRemote) arm(readers int) *sync.WaitGroup {
	wg := &sync.WaitGroup{}
	wg.Add(readers)
	m.mu.Lock()
	m.barrier = wg
	m.mu.Unlock()
	return wg
}

func (m *memRemote) disarm() {
	m.mu.Lock()
	m.barrier = nil
	m.mu.Unlock()
}

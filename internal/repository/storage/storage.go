// Package storage hides the choice between the durable remote store and the
// process-local map behind one get/put surface.
//
// The backend is chosen once, at construction. With a remote backend every
// read and write goes to it and its failures are returned as-is; the local
// map is still written on every Put as a mirror but is never read. Without a
// remote backend the local map serves both reads and writes.
package storage

import (
	"context"

	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/internal/repository/memory"
)

const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

type Storage struct {
	remote contract.RemoteBackend
	local  *memory.LocalStore
	logger logger.ILogger
}

var _ contract.KVStore = (*Storage)(nil)

// New builds a Storage. Pass a nil remote to run on the local map only.
func New(remote contract.RemoteBackend, log logger.ILogger) *Storage {
	return &Storage{
		remote: remote,
		local:  memory.NewLocalStore(),
		logger: log,
	}
}

func (s *Storage) Mode() string {
	if s.remote != nil {
		return ModeRemote
	}
	return ModeLocal
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.remote == nil {
		value, found := s.local.Get(key)
		return value, found, nil
	}

	value, found, err := s.remote.Get(ctx, key)
	if err != nil {
		s.logger.Warn("STORAGE", "Remote get failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false, err
	}
	return value, found, nil
}

func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	s.local.Set(key, value)

	if s.remote == nil {
		return nil
	}

	if err := s.remote.Put(ctx, key, value); err != nil {
		s.logger.Warn("STORAGE", "Remote put failed", map[string]interface{}{"key": key, "error": err.Error()})
		return err
	}
	return nil
}

// Ping reports remote health. Always nil in local mode.
func (s *Storage) Ping(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	return s.remote.Ping(ctx)
}

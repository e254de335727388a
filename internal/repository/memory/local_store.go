package memory

import (
	"github.com/patrickmn/go-cache"
)

// LocalStore is the process-local key/value map. Entries never expire and
// are never shared with other processes.
type LocalStore struct {
	cache *cache.Cache
}

func NewLocalStore() *LocalStore {
	return &LocalStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *LocalStore) Set(key string, value []byte) {
	// Copy so later mutation of the caller's slice cannot leak into the map
	stored := make([]byte, len(value))
	copy(stored, value)
	s.cache.Set(key, stored, cache.NoExpiration)
}

func (s *LocalStore) Get(key string) ([]byte, bool) {
	if x, found := s.cache.Get(key); found {
		return x.([]byte), true
	}
	return nil, false
}

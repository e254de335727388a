package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"chitty-gateway/internal/repository/contract"
)

// Key prefixes partitioning the shared key/value namespace. An id is unique
// only within its own prefix.
const (
	PrefixSession    = "session:"
	PrefixHandoff    = "mobile-handoff:"
	PrefixQuickStart = "quickstart:"
)

// kvRepository stores JSON documents of type T under prefix+id.
type kvRepository[T any] struct {
	store  contract.KVStore
	prefix string
}

func (r kvRepository[T]) key(id string) string {
	return r.prefix + id
}

func (r kvRepository[T]) find(ctx context.Context, id string) (*T, error) {
	data, found, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key(id), err)
	}
	return &v, nil
}

func (r kvRepository[T]) save(ctx context.Context, id string, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key(id), err)
	}
	return r.store.Put(ctx, r.key(id), data)
}

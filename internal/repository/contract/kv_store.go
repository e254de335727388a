package contract

import "context"

// KVStore is the get/put surface every repository persists through.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// RemoteBackend is a durable key/value store reachable over the network.
// Calls may fail on transient network or service errors.
type RemoteBackend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

package contract

import (
	"context"

	"chitty-gateway/internal/entity"
)

// RecordRepository reads and writes domain records in the key/value namespace.
type RecordRepository interface {
	FindOne(ctx context.Context, domain, id string) (*entity.Record, error)
	Create(ctx context.Context, record *entity.Record) error
}

// RecordIndexRepository mirrors records into the relational store for listing.
type RecordIndexRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	FindAllByDomain(ctx context.Context, domain string, limit int) ([]*entity.Record, error)
}

package implementation

import (
	"context"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/repository/contract"
)

type RecordRepositoryImpl struct {
	store contract.KVStore
}

func NewRecordRepository(store contract.KVStore) contract.RecordRepository {
	return &RecordRepositoryImpl{store: store}
}

func (r *RecordRepositoryImpl) repo(domain string) kvRepository[entity.Record] {
	return kvRepository[entity.Record]{store: r.store, prefix: domain + ":"}
}

func (r *RecordRepositoryImpl) FindOne(ctx context.Context, domain, id string) (*entity.Record, error) {
	return r.repo(domain).find(ctx, id)
}

func (r *RecordRepositoryImpl) Create(ctx context.Context, record *entity.Record) error {
	return r.repo(record.Domain).save(ctx, record.Id, record)
}

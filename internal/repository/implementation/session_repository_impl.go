package implementation

import (
	"context"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/repository/contract"
)

type SessionRepositoryImpl struct {
	kv kvRepository[entity.Session]
}

func NewSessionRepository(store contract.KVStore) contract.SessionRepository {
	return &SessionRepositoryImpl{
		kv: kvRepository[entity.Session]{store: store, prefix: PrefixSession},
	}
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Session, error) {
	return r.kv.find(ctx, id)
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, session *entity.Session) error {
	return r.kv.save(ctx, session.Id, session)
}

type HandoffRepositoryImpl struct {
	kv kvRepository[entity.Handoff]
}

func NewHandoffRepository(store contract.KVStore) contract.HandoffRepository {
	return &HandoffRepositoryImpl{
		kv: kvRepository[entity.Handoff]{store: store, prefix: PrefixHandoff},
	}
}

func (r *HandoffRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Handoff, error) {
	return r.kv.find(ctx, id)
}

func (r *HandoffRepositoryImpl) Create(ctx context.Context, handoff *entity.Handoff) error {
	return r.kv.save(ctx, handoff.Id, handoff)
}

type QuickStartRepositoryImpl struct {
	kv kvRepository[entity.QuickStart]
}

func NewQuickStartRepository(store contract.KVStore) contract.QuickStartRepository {
	return &QuickStartRepositoryImpl{
		kv: kvRepository[entity.QuickStart]{store: store, prefix: PrefixQuickStart},
	}
}

func (r *QuickStartRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.QuickStart, error) {
	return r.kv.find(ctx, id)
}

func (r *QuickStartRepositoryImpl) Create(ctx context.Context, quickStart *entity.QuickStart) error {
	return r.kv.save(ctx, quickStart.Id, quickStart)
}

package contract

import (
	"context"

	"chitty-gateway/internal/entity"
)

// SessionRepository persists sessions. FindOne returns (nil, nil) when the id
// is absent, as do the other continuity repositories below.
type SessionRepository interface {
	FindOne(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
}

type HandoffRepository interface {
	FindOne(ctx context.Context, id string) (*entity.Handoff, error)
	Create(ctx context.Context, handoff *entity.Handoff) error
}

type QuickStartRepository interface {
	FindOne(ctx context.Context, id string) (*entity.QuickStart, error)
	Create(ctx context.Context, quickStart *entity.QuickStart) error
}

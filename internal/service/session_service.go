package service

import (
	"context"
	"errors"
	"time"

	"chitty-gateway/internal/dto"
	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/pkg/idgen"
)

var ErrSessionNotFound = errors.New("session not found")

type ISessionService interface {
	Create(ctx context.Context, payload map[string]interface{}) (*entity.Session, error)
	Show(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (*entity.Session, error)
	List(ctx context.Context) (*dto.ListSessionResponse, error)
	Sync(ctx context.Context, payload map[string]interface{}) (*dto.SyncSessionResponse, error)
}

type sessionService struct {
	repo   contract.SessionRepository
	logger logger.ILogger
	now    func() time.Time
}

func NewSessionService(repo contract.SessionRepository, log logger.ILogger) ISessionService {
	return &sessionService{
		repo:   repo,
		logger: log,
		now:    utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func (s *sessionService) Create(ctx context.Context, payload map[string]interface{}) (*entity.Session, error) {
	now := s.now()
	session := &entity.Session{
		Id:       idgen.GenerateAt(idgen.KindSession, now),
		Platform: entity.DefaultPlatform,
	}
	session.Merge(payload)
	if session.Platform == "" {
		session.Platform = entity.DefaultPlatform
	}
	session.Status = entity.SessionStatusActive
	session.CreatedAt = now
	session.LastActivity = now

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("SESSION", "Session created", map[string]interface{}{
		"session_id": session.Id,
		"platform":   session.Platform,
	})
	return session, nil
}

func (s *sessionService) Show(ctx context.Context, id string) (*entity.Session, error) {
	session, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Update is read-merge-write with no version check: two concurrent updates
// of the same id race and the last write wins.
func (s *sessionService) Update(ctx context.Context, id string, patch map[string]interface{}) (*entity.Session, error) {
	session, err := s.Show(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Merge(patch)
	session.LastActivity = s.now()

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("SESSION", "Session updated", map[string]interface{}{
		"session_id": session.Id,
		"fields":     len(patch),
	})
	return session, nil
}

// List has no index to read from; it always reports an empty set.
func (s *sessionService) List(ctx context.Context) (*dto.ListSessionResponse, error) {
	return &dto.ListSessionResponse{
		Sessions: []*entity.Session{},
		Total:    0,
	}, nil
}

func (s *sessionService) Sync(ctx context.Context, payload map[string]interface{}) (*dto.SyncSessionResponse, error) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return &dto.SyncSessionResponse{
		Success:  true,
		Message:  "Session sync acknowledged",
		SyncedAt: s.now(),
		Data:     payload,
	}, nil
}

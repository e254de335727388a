package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chitty-gateway/internal/dto"
	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/pkg/idgen"
)

var ErrContinuityNotFound = errors.New("session or handoff not found")

const (
	SourceSession    = "session"
	SourceHandoff    = "handoff"
	SourceQuickStart = "quickstart"

	DefaultQuickStartPlatform = "claude-mobile"
)

var (
	quickActions = []string{"Continue", "Status", "Sync", "Handoff"}

	recommendationsWithoutContext = []string{"Start a new session", "Browse recent activity"}
	recommendationsWithContext    = []string{"Continue where you left off", "Review previous context", "Sync across devices"}
)

type IContinuityService interface {
	Continue(ctx context.Context, id string) (*dto.ContinueResponse, error)
	QuickStart(ctx context.Context, req *dto.QuickStartRequest) (*dto.QuickStartResponse, error)
}

type continuityService struct {
	sessions    contract.SessionRepository
	handoffs    contract.HandoffRepository
	quickStarts contract.QuickStartRepository
	logger      logger.ILogger
	now         func() time.Time
}

func NewContinuityService(
	sessions contract.SessionRepository,
	handoffs contract.HandoffRepository,
	quickStarts contract.QuickStartRepository,
	log logger.ILogger,
) IContinuityService {
	return &continuityService{
		sessions:    sessions,
		handoffs:    handoffs,
		quickStarts: quickStarts,
		logger:      log,
		now:         utcNow,
	}
}

// continuable is the common projection of the three record kinds.
type continuable struct {
	source       string
	id           string
	platform     string
	status       string
	createdAt    time.Time
	lastActivity *time.Time
}

func fromSession(s *entity.Session) *continuable {
	lastActivity := s.LastActivity
	return &continuable{
		source:       SourceSession,
		id:           s.Id,
		platform:     s.Platform,
		status:       s.Status,
		createdAt:    s.CreatedAt,
		lastActivity: &lastActivity,
	}
}

func fromHandoff(h *entity.Handoff) *continuable {
	return &continuable{
		source:    SourceHandoff,
		id:        h.Id,
		platform:  h.TargetPlatform,
		status:    h.Status,
		createdAt: h.CreatedAt,
	}
}

func fromQuickStart(q *entity.QuickStart) *continuable {
	return &continuable{
		source:    SourceQuickStart,
		id:        q.Id,
		platform:  q.Platform,
		status:    q.Status,
		createdAt: q.CreatedAt,
	}
}

// Continue probes session, then handoff, then quick-start; the first hit wins.
func (s *continuityService) Continue(ctx context.Context, id string) (*dto.ContinueResponse, error) {
	hit, err := s.probe(ctx, id)
	if err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, ErrContinuityNotFound
	}

	s.logger.Debug("CONTINUITY", "Continuity resolved", map[string]interface{}{
		"id":     id,
		"source": hit.source,
	})

	return &dto.ContinueResponse{
		Success: true,
		Source:  hit.source,
		Session: dto.ContinuitySession{
			Id:           hit.id,
			Platform:     hit.platform,
			Status:       hit.status,
			LastActivity: hit.lastActivity,
		},
		Summary:      summarize(hit),
		QuickActions: append([]string(nil), quickActions...),
	}, nil
}

func (s *continuityService) probe(ctx context.Context, id string) (*continuable, error) {
	session, err := s.sessions.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return fromSession(session), nil
	}

	handoff, err := s.handoffs.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if handoff != nil {
		return fromHandoff(handoff), nil
	}

	quickStart, err := s.quickStarts.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if quickStart != nil {
		return fromQuickStart(quickStart), nil
	}
	return nil, nil
}

// QuickStart snapshots whatever the hint resolves to among sessions and
// handoffs. Quick-starts are not probed, so a hint never resolves to another
// quick-start.
func (s *continuityService) QuickStart(ctx context.Context, req *dto.QuickStartRequest) (*dto.QuickStartResponse, error) {
	platform := req.Platform
	if platform == "" {
		platform = DefaultQuickStartPlatform
	}

	var snapshot map[string]interface{}
	if req.SessionHint != "" {
		var err error
		snapshot, err = s.snapshot(ctx, req.SessionHint)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	quickStart := &entity.QuickStart{
		Id:          idgen.GenerateAt(idgen.KindQuickStart, now),
		Platform:    platform,
		SessionHint: req.SessionHint,
		ContextData: snapshot,
		CreatedAt:   now,
		Status:      entity.QuickStartStatusReady,
	}

	if err := s.quickStarts.Create(ctx, quickStart); err != nil {
		return nil, err
	}

	s.logger.Info("CONTINUITY", "Quick start created", map[string]interface{}{
		"quick_start_id": quickStart.Id,
		"platform":       platform,
		"has_context":    snapshot != nil,
	})

	return &dto.QuickStartResponse{
		Success:         true,
		QuickStartId:    quickStart.Id,
		Platform:        platform,
		Context:         snapshot,
		Recommendations: recommend(snapshot),
	}, nil
}

func (s *continuityService) snapshot(ctx context.Context, hint string) (map[string]interface{}, error) {
	session, err := s.sessions.FindOne(ctx, hint)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return toSnapshot(session)
	}

	handoff, err := s.handoffs.FindOne(ctx, hint)
	if err != nil {
		return nil, err
	}
	if handoff != nil {
		return toSnapshot(handoff)
	}
	return nil, nil
}

// toSnapshot copies v through JSON so later writes to the source never show up
// in the quick-start.
func toSnapshot(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func recommend(snapshot map[string]interface{}) []string {
	if snapshot == nil {
		return append([]string(nil), recommendationsWithoutContext...)
	}
	return append([]string(nil), recommendationsWithContext...)
}

func summarize(c *continuable) string {
	return fmt.Sprintf("%s session from %s", c.platform, c.createdAt.UTC().Format("Jan 2, 2006 15:04 UTC"))
}

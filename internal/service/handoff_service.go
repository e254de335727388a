package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/pkg/idgen"
)

var ErrHandoffNotFound = errors.New("handoff not found")

const (
	DefaultTargetPlatform = "claude-mobile"

	maxKeyPoints   = 3
	maxKeyPointLen = 100
)

// keyPointFields are read in this order; the first three present win.
var keyPointFields = []struct {
	field string
	label string
}{
	{"task", "Task"},
	{"progress", "Progress"},
	{"nextSteps", "Next"},
}

var (
	nextActionsWithoutContext = []string{"Start new conversation", "Browse recent sessions"}
	nextActionsWithContext    = []string{"Continue where you left off", "Review key points", "Sync with desktop"}
)

type IHandoffService interface {
	Create(ctx context.Context, sessionId, targetPlatform string, mobileContext map[string]interface{}) (*entity.Handoff, string, error)
	Show(ctx context.Context, id string) (*entity.Handoff, error)
}

type handoffService struct {
	repo    contract.HandoffRepository
	baseURL string
	logger  logger.ILogger
	now     func() time.Time
}

func NewHandoffService(repo contract.HandoffRepository, baseURL string, log logger.ILogger) IHandoffService {
	return &handoffService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
		now:     utcNow,
	}
}

// Create stores a pending handoff and returns it with its mobile URL.
// sessionId is kept as given; it is not checked against the session namespace.
func (s *handoffService) Create(ctx context.Context, sessionId, targetPlatform string, mobileContext map[string]interface{}) (*entity.Handoff, string, error) {
	if targetPlatform == "" {
		targetPlatform = DefaultTargetPlatform
	}

	now := s.now()
	handoff := &entity.Handoff{
		Id:             idgen.GenerateAt(idgen.KindHandoff, now),
		SessionId:      sessionId,
		TargetPlatform: targetPlatform,
		MobileContext:  BuildMobileContext(mobileContext),
		CreatedAt:      now,
		Status:         entity.HandoffStatusPending,
	}

	if err := s.repo.Create(ctx, handoff); err != nil {
		return nil, "", err
	}

	s.logger.Info("HANDOFF", "Handoff created", map[string]interface{}{
		"handoff_id":      handoff.Id,
		"session_id":      sessionId,
		"target_platform": targetPlatform,
	})
	return handoff, s.MobileURL(handoff.Id), nil
}

func (s *handoffService) Show(ctx context.Context, id string) (*entity.Handoff, error) {
	handoff, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if handoff == nil {
		return nil, ErrHandoffNotFound
	}
	return handoff, nil
}

func (s *handoffService) MobileURL(id string) string {
	return s.baseURL + "/mobile/continue/" + id
}

// BuildMobileContext overlays keyPoints and nextActions onto a copy of ctx.
func BuildMobileContext(ctx map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(ctx)+2)
	for k, v := range ctx {
		out[k] = v
	}
	out["keyPoints"] = ExtractKeyPoints(ctx)
	out["nextActions"] = SuggestNextActions(ctx)
	return out
}

// ExtractKeyPoints returns at most three labelled points, never padded.
func ExtractKeyPoints(ctx map[string]interface{}) []string {
	points := make([]string, 0, maxKeyPoints)
	for _, kp := range keyPointFields {
		if len(points) == maxKeyPoints {
			break
		}
		text := stringify(ctx[kp.field])
		if text == "" {
			continue
		}
		points = append(points, truncate(kp.label+": "+text, maxKeyPointLen))
	}
	return points
}

// SuggestNextActions depends only on whether a context was supplied at all.
func SuggestNextActions(ctx map[string]interface{}) []string {
	if ctx == nil {
		return append([]string(nil), nextActionsWithoutContext...)
	}
	return append([]string(nil), nextActionsWithContext...)
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

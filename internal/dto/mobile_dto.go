package dto

import (
	"time"

	"chitty-gateway/internal/entity"
)

// CreateMobileHandoffRequest is the /mobile/handoff body.
type CreateMobileHandoffRequest struct {
	SessionId      string                 `json:"sessionId"`
	TargetPlatform string                 `json:"targetPlatform"`
	MobileContext  map[string]interface{} `json:"mobileContext"`
}

type CreateMobileHandoffResponse struct {
	Success       bool                   `json:"success"`
	HandoffId     string                 `json:"handoffId"`
	MobileUrl     string                 `json:"mobileUrl"`
	MobileContext map[string]interface{} `json:"mobileContext"`
	Handoff       *entity.Handoff        `json:"handoff"`
}

type QuickStartRequest struct {
	Platform    string `json:"platform"`
	SessionHint string `json:"sessionHint"`
}

type QuickStartResponse struct {
	Success         bool                   `json:"success"`
	QuickStartId    string                 `json:"quickStartId"`
	Platform        string                 `json:"platform"`
	Context         map[string]interface{} `json:"context"`
	Recommendations []string               `json:"recommendations"`
}

// ContinuitySession is the normalized echo of whichever record matched.
type ContinuitySession struct {
	Id           string     `json:"id"`
	Platform     string     `json:"platform"`
	Status       string     `json:"status"`
	LastActivity *time.Time `json:"lastActivity,omitempty"`
}

type ContinueResponse struct {
	Success      bool              `json:"success"`
	Source       string            `json:"source"`
	Session      ContinuitySession `json:"session"`
	Summary      string            `json:"summary"`
	QuickActions []string          `json:"quickActions"`
}

type MobileInfoResponse struct {
	Service   string   `json:"service"`
	Component string   `json:"component"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

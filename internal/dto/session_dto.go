package dto

import (
	"time"

	"chitty-gateway/internal/entity"
)

type CreateSessionResponse struct {
	Success   bool            `json:"success"`
	SessionId string          `json:"sessionId"`
	Session   *entity.Session `json:"session"`
}

type ShowSessionResponse struct {
	Success bool            `json:"success"`
	Session *entity.Session `json:"session"`
}

type UpdateSessionResponse struct {
	Success bool            `json:"success"`
	Session *entity.Session `json:"session"`
}

type ListSessionResponse struct {
	Sessions []*entity.Session `json:"sessions"`
	Total    int               `json:"total"`
}

type SyncSessionResponse struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	SyncedAt time.Time              `json:"syncedAt"`
	Data     map[string]interface{} `json:"data"`
}

// CreateHandoffRequest is the /session/handoff body.
type CreateHandoffRequest struct {
	SessionId string                 `json:"sessionId"`
	TargetApp string                 `json:"targetApp"`
	Context   map[string]interface{} `json:"context"`
}

type CreateHandoffResponse struct {
	Success   bool            `json:"success"`
	HandoffId string          `json:"handoffId"`
	MobileUrl string          `json:"mobileUrl"`
	Handoff   *entity.Handoff `json:"handoff"`
}

type StatusResponse struct {
	Service   string    `json:"service"`
	Component string    `json:"component"`
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Features  []string  `json:"features"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthResponse struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	KVStore   string    `json:"kvStore"`
	Database  string    `json:"database"`
	Queue     string    `json:"queue"`
	Domains   []string  `json:"domains"`
	Timestamp time.Time `json:"timestamp"`
}

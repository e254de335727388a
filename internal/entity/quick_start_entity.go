package entity

import "time"

const QuickStartStatusReady = "ready"

// QuickStart snapshots whatever SessionHint resolved to at creation time.
// ContextData is nil when there was no hint or nothing matched.
type QuickStart struct {
	Id          string                 `json:"id"`
	Platform    string                 `json:"platform"`
	SessionHint string                 `json:"sessionHint,omitempty"`
	ContextData map[string]interface{} `json:"contextData"`
	CreatedAt   time.Time              `json:"createdAt"`
	Status      string                 `json:"status"`
}

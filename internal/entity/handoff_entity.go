package entity

import "time"

const HandoffStatusPending = "pending"

// Handoff moves context from a session to another platform. SessionId is a
// lookup key only; it is never checked against the session namespace.
type Handoff struct {
	Id             string                 `json:"id"`
	SessionId      string                 `json:"sessionId"`
	TargetPlatform string                 `json:"targetPlatform"`
	MobileContext  map[string]interface{} `json:"mobileContext"`
	CreatedAt      time.Time              `json:"createdAt"`
	Status         string                 `json:"status"`
}

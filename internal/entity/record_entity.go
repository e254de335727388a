package entity

import "time"

// Record is a generic domain document (legal case, asset, finance account,
// property) stored through the same key/value abstraction as sessions.
// SecretHash is persisted but never part of an API response.
type Record struct {
	Id         string                 `json:"id"`
	Domain     string                 `json:"domain"`
	Data       map[string]interface{} `json:"data"`
	Status     string                 `json:"status"`
	SecretHash string                 `json:"secretHash,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

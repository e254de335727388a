package entity

import (
	"encoding/json"
	"time"
)

const (
	DefaultPlatform     = "claude-code"
	SessionStatusActive = "active"
)

// Session keeps a fixed set of known fields plus caller-supplied Attributes.
// On the wire both are flattened into one JSON object.
type Session struct {
	Id           string
	Platform     string
	Status       string
	CreatedAt    time.Time
	LastActivity time.Time
	Attributes   map[string]interface{}
}

const (
	fieldId           = "id"
	fieldPlatform     = "platform"
	fieldStatus       = "status"
	fieldCreatedAt    = "createdAt"
	fieldLastActivity = "lastActivity"
)

// Merge applies patch key by key. Known fields take string values (timestamps
// must be RFC 3339); the id never changes. Everything else lands in Attributes,
// overwriting a same-named entry. No deep merge.
func (s *Session) Merge(patch map[string]interface{}) {
	for key, value := range patch {
		switch key {
		case fieldId:
			continue
		case fieldPlatform:
			if v, ok := value.(string); ok {
				s.Platform = v
			}
		case fieldStatus:
			if v, ok := value.(string); ok {
				s.Status = v
			}
		case fieldCreatedAt:
			if t, ok := parseTime(value); ok {
				s.CreatedAt = t
			}
		case fieldLastActivity:
			if t, ok := parseTime(value); ok {
				s.LastActivity = t
			}
		default:
			if s.Attributes == nil {
				s.Attributes = make(map[string]interface{})
			}
			s.Attributes[key] = value
		}
	}
}

// ToMap returns the flattened representation.
func (s *Session) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(s.Attributes)+5)
	for k, v := range s.Attributes {
		out[k] = v
	}
	out[fieldId] = s.Id
	out[fieldPlatform] = s.Platform
	out[fieldStatus] = s.Status
	out[fieldCreatedAt] = s.CreatedAt
	out[fieldLastActivity] = s.LastActivity
	return out
}

func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Session{}
	if v, ok := raw[fieldId].(string); ok {
		s.Id = v
	}
	delete(raw, fieldId)
	s.Merge(raw)
	return nil
}

func parseTime(value interface{}) (time.Time, bool) {
	str, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

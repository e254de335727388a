// Package idgen builds the string identifiers used for sessions, handoffs,
// quick-starts and domain records.
package idgen

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	KindSession    = "session"
	KindHandoff    = "handoff"
	KindQuickStart = "quickstart"
)

// suffixLen is the number of hex characters taken from a random UUID.
const suffixLen = 9

// Generate returns "<kind>-<base36 unix millis>-<random suffix>".
// An empty kind falls back to "id".
func Generate(kind string) string {
	return GenerateAt(kind, time.Now())
}

// GenerateAt is Generate with an explicit creation time.
func GenerateAt(kind string, at time.Time) string {
	if kind == "" {
		kind = "id"
	}
	return kind + "-" + encodeTime(at) + "-" + randomSuffix()
}

// Chitty formats a CHITTY-<TYPE>-<TS>-<SUFFIX> identifier for domain records.
func Chitty(recordType string) string {
	return strings.ToUpper("CHITTY-" + recordType + "-" + encodeTime(time.Now()) + "-" + randomSuffix())
}

// kindOf returns the kind tag of an identifier produced by Generate.
func kindOf(id string) string {
	idx := strings.IndexByte(id, '-')
	if idx <= 0 {
		return ""
	}
	return id[:idx]
}

func encodeTime(at time.Time) string {
	return strconv.FormatInt(at.UnixMilli(), 36)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
}

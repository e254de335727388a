package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeDecode(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(Envelope(BaseEvent{
		Type:       "RECORD_ANCHOR",
		Data:       map[string]interface{}{"record_id": "CHITTY-CASE-1"},
		OccurredAt: at,
	}))
	require.NoError(t, err)

	evt, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "RECORD_ANCHOR", evt.EventType())
	assert.Equal(t, "CHITTY-CASE-1", evt.Payload()["record_id"])
	assert.True(t, at.Equal(evt.Timestamp()))
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"data":{}}`))
	assert.Error(t, err)
}

package mapper

import (
	"testing"
	"time"

	"chitty-gateway/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMapper_DropsSecretHash(t *testing.T) {
	m := NewRecordMapper()
	now := time.Now().UTC()

	row, err := m.RecordToModel(&entity.Record{
		Id:         "CHITTY-FINANCE-X-1",
		Domain:     "finance",
		Status:     "active",
		Data:       map[string]interface{}{"accountName": "Ops"},
		SecretHash: "$2a$10$hash",
		CreatedAt:  now,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"accountName":"Ops"}`, string(row.Data))

	back := m.RecordToEntity(row)
	assert.Equal(t, "CHITTY-FINANCE-X-1", back.Id)
	assert.Equal(t, "Ops", back.Data["accountName"])
	assert.Empty(t, back.SecretHash)
}

func TestRecordMapper_NilSafe(t *testing.T) {
	m := NewRecordMapper()

	row, err := m.RecordToModel(nil)
	assert.NoError(t, err)
	assert.Nil(t, row)
	assert.Nil(t, m.RecordToEntity(nil))
}

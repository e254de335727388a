package mapper

import (
	"encoding/json"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/model"

	"gorm.io/datatypes"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

// RecordToModel drops SecretHash; the relational mirror never stores secrets.
func (m *RecordMapper) RecordToModel(r *entity.Record) (*model.Record, error) {
	if r == nil {
		return nil, nil
	}

	data, err := json.Marshal(r.Data)
	if err != nil {
		return nil, err
	}

	return &model.Record{
		Id:        r.Id,
		Domain:    r.Domain,
		Status:    r.Status,
		Data:      datatypes.JSON(data),
		CreatedAt: r.CreatedAt,
	}, nil
}

func (m *RecordMapper) RecordToEntity(r *model.Record) *entity.Record {
	if r == nil {
		return nil
	}

	var data map[string]interface{}
	if len(r.Data) > 0 {
		// A malformed row still lists; it just carries no data.
		_ = json.Unmarshal(r.Data, &data)
	}

	return &entity.Record{
		Id:        r.Id,
		Domain:    r.Domain,
		Status:    r.Status,
		Data:      data,
		CreatedAt: r.CreatedAt,
	}
}

func (m *RecordMapper) RecordsToEntities(records []*model.Record) []*entity.Record {
	entities := make([]*entity.Record, len(records))
	for i, r := range records {
		entities[i] = m.RecordToEntity(r)
	}
	return entities
}

package implementation

import (
	"context"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/mapper"
	"chitty-gateway/internal/model"
	"chitty-gateway/internal/repository/contract"

	"gorm.io/gorm"
)

type RecordIndexRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecordMapper
}

func NewRecordIndexRepository(db *gorm.DB) contract.RecordIndexRepository {
	return &RecordIndexRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecordMapper(),
	}
}

func (r *RecordIndexRepositoryImpl) Create(ctx context.Context, record *entity.Record) error {
	m, err := r.mapper.RecordToModel(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RecordIndexRepositoryImpl) FindAllByDomain(ctx context.Context, domain string, limit int) ([]*entity.Record, error) {
	var models []*model.Record
	err := r.db.WithContext(ctx).
		Where("domain = ?", domain).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.RecordsToEntities(models), nil
}

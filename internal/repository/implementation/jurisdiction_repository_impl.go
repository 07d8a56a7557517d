package implementation

import (
	"context"
	"errors"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/mapper"
	"ai-compliance-be/internal/model"
	"ai-compliance-be/internal/repository/contract"
	"ai-compliance-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JurisdictionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JurisdictionMapper
}

func NewJurisdictionRepository(db *gorm.DB) contract.JurisdictionRepository {
	return &JurisdictionRepositoryImpl{
		db:     db,
		mapper: mapper.NewJurisdictionMapper(),
	}
}

func (r *JurisdictionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *JurisdictionRepositoryImpl) Create(ctx context.Context, jurisdiction *entity.Jurisdiction) error {
	m := r.mapper.ToModel(jurisdiction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*jurisdiction = *r.mapper.ToEntity(m)
	return nil
}

func (r *JurisdictionRepositoryImpl) Update(ctx context.Context, jurisdiction *entity.Jurisdiction) error {
	m := r.mapper.ToModel(jurisdiction)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*jurisdiction = *r.mapper.ToEntity(m)
	return nil
}

func (r *JurisdictionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Jurisdiction{}, id).Error
}

func (r *JurisdictionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Jurisdiction, error) {
	var m model.Jurisdiction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *JurisdictionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Jurisdiction, error) {
	var models []*model.Jurisdiction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

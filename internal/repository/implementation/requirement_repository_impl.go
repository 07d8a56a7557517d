package implementation

import (
	"context"
	"errors"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/mapper"
	"ai-compliance-be/internal/model"
	"ai-compliance-be/internal/repository/contract"
	"ai-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RequirementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequirementMapper
}

func NewRequirementRepository(db *gorm.DB) contract.RequirementRepository {
	return &RequirementRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequirementMapper(),
	}
}

func (r *RequirementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequirementRepositoryImpl) Create(ctx context.Context, requirement *entity.Requirement) error {
	m := r.mapper.ToModel(requirement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*requirement = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequirementRepositoryImpl) CreateBulk(ctx context.Context, requirements []*entity.Requirement) error {
	if len(requirements) == 0 {
		return nil
	}
	models := r.mapper.ToModels(requirements)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*requirements[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *RequirementRepositoryImpl) Update(ctx context.Context, requirement *entity.Requirement) error {
	m := r.mapper.ToModel(requirement)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*requirement = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequirementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Requirement, error) {
	var m model.Requirement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RequirementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Requirement, error) {
	var models []*model.Requirement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RequirementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Requirement{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

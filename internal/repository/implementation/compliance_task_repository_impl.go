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

type ComplianceTaskRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplianceTaskMapper
}

func NewComplianceTaskRepository(db *gorm.DB) contract.ComplianceTaskRepository {
	return &ComplianceTaskRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplianceTaskMapper(),
	}
}

func (r *ComplianceTaskRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplianceTaskRepositoryImpl) Create(ctx context.Context, task *entity.ComplianceTask) error {
	m := r.mapper.ToModel(task)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*task = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceTaskRepositoryImpl) CreateBulk(ctx context.Context, tasks []*entity.ComplianceTask) error {
	if len(tasks) == 0 {
		return nil
	}
	models := r.mapper.ToModels(tasks)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*tasks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ComplianceTaskRepositoryImpl) Update(ctx context.Context, task *entity.ComplianceTask) error {
	m := r.mapper.ToModel(task)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*task = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceTaskRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceTask, error) {
	var m model.ComplianceTask
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplianceTaskRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceTask, error) {
	var models []*model.ComplianceTask
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

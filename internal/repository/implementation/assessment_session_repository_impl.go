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

type AssessmentSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentSessionMapper
}

func NewAssessmentSessionRepository(db *gorm.DB) contract.AssessmentSessionRepository {
	return &AssessmentSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentSessionMapper(),
	}
}

func (r *AssessmentSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssessmentSessionRepositoryImpl) Create(ctx context.Context, session *entity.AssessmentSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentSessionRepositoryImpl) Update(ctx context.Context, session *entity.AssessmentSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AssessmentSession, error) {
	var m model.AssessmentSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AssessmentSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AssessmentSession, error) {
	var models []*model.AssessmentSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

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

type ComplianceDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplianceDocumentMapper
}

func NewComplianceDocumentRepository(db *gorm.DB) contract.ComplianceDocumentRepository {
	return &ComplianceDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplianceDocumentMapper(),
	}
}

func (r *ComplianceDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplianceDocumentRepositoryImpl) Create(ctx context.Context, document *entity.ComplianceDocument) error {
	m := r.mapper.ToModel(document)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceDocumentRepositoryImpl) Update(ctx context.Context, document *entity.ComplianceDocument) error {
	m := r.mapper.ToModel(document)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceDocument, error) {
	var m model.ComplianceDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplianceDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceDocument, error) {
	var models []*model.ComplianceDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

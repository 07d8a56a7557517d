package unitofwork

import (
	"context"
	"fmt"

	"ai-compliance-be/internal/repository/contract"
	"ai-compliance-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) JurisdictionRepository() contract.JurisdictionRepository {
	return implementation.NewJurisdictionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ComplianceDocumentRepository() contract.ComplianceDocumentRepository {
	return implementation.NewComplianceDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RequirementRepository() contract.RequirementRepository {
	return implementation.NewRequirementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AssessmentSessionRepository() contract.AssessmentSessionRepository {
	return implementation.NewAssessmentSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AssessmentRepository() contract.AssessmentRepository {
	return implementation.NewAssessmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ComplianceTaskRepository() contract.ComplianceTaskRepository {
	return implementation.NewComplianceTaskRepository(u.getDB())
}

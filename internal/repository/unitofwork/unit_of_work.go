package unitofwork

import (
	"context"

	"ai-compliance-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	JurisdictionRepository() contract.JurisdictionRepository
	ComplianceDocumentRepository() contract.ComplianceDocumentRepository
	RequirementRepository() contract.RequirementRepository
	AssessmentSessionRepository() contract.AssessmentSessionRepository
	AssessmentRepository() contract.AssessmentRepository
	ComplianceTaskRepository() contract.ComplianceTaskRepository
}

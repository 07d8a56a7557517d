package contract

import (
	"context"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
)

type ComplianceDocumentRepository interface {
	Create(ctx context.Context, document *entity.ComplianceDocument) error
	Update(ctx context.Context, document *entity.ComplianceDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceDocument, error)
}

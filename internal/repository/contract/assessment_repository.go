package contract

import (
	"context"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
)

type AssessmentRepository interface {
	CreateBulk(ctx context.Context, assessments []*entity.Assessment) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
)

type RequirementRepository interface {
	Create(ctx context.Context, requirement *entity.Requirement) error
	CreateBulk(ctx context.Context, requirements []*entity.Requirement) error
	Update(ctx context.Context, requirement *entity.Requirement) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Requirement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Requirement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
)

type ComplianceTaskRepository interface {
	Create(ctx context.Context, task *entity.ComplianceTask) error
	CreateBulk(ctx context.Context, tasks []*entity.ComplianceTask) error
	Update(ctx context.Context, task *entity.ComplianceTask) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceTask, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceTask, error)
}

package contract

import (
	"context"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
)

type AssessmentSessionRepository interface {
	Create(ctx context.Context, session *entity.AssessmentSession) error
	Update(ctx context.Context, session *entity.AssessmentSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AssessmentSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AssessmentSession, error)
}

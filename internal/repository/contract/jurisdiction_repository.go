package contract

import (
	"context"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"

	"github.com/google/uuid"
)

type JurisdictionRepository interface {
	Create(ctx context.Context, jurisdiction *entity.Jurisdiction) error
	Update(ctx context.Context, jurisdiction *entity.Jurisdiction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Jurisdiction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Jurisdiction, error)
}

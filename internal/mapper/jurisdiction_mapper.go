package mapper

import (
	"time"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/model"
)

type JurisdictionMapper struct{}

func NewJurisdictionMapper() *JurisdictionMapper {
	return &JurisdictionMapper{}
}

func (m *JurisdictionMapper) ToEntity(j *model.Jurisdiction) *entity.Jurisdiction {
	if j == nil {
		return nil
	}

	var updatedAt *time.Time
	if !j.UpdatedAt.IsZero() {
		t := j.UpdatedAt
		updatedAt = &t
	}

	return &entity.Jurisdiction{
		Id:             j.Id,
		Name:           j.Name,
		RegulationType: j.RegulationType,
		Description:    j.Description,
		Region:         j.Region,
		EffectiveDate:  j.EffectiveDate,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *JurisdictionMapper) ToModel(j *entity.Jurisdiction) *model.Jurisdiction {
	if j == nil {
		return nil
	}

	var updatedAt time.Time
	if j.UpdatedAt != nil {
		updatedAt = *j.UpdatedAt
	}

	return &model.Jurisdiction{
		Id:             j.Id,
		Name:           j.Name,
		RegulationType: j.RegulationType,
		Description:    j.Description,
		Region:         j.Region,
		EffectiveDate:  j.EffectiveDate,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *JurisdictionMapper) ToEntities(jurisdictions []*model.Jurisdiction) []*entity.Jurisdiction {
	entities := make([]*entity.Jurisdiction, len(jurisdictions))
	for i, j := range jurisdictions {
		entities[i] = m.ToEntity(j)
	}
	return entities
}

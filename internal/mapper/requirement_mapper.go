package mapper

import (
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/model"
)

type RequirementMapper struct{}

func NewRequirementMapper() *RequirementMapper {
	return &RequirementMapper{}
}

func (m *RequirementMapper) ToEntity(r *model.Requirement) *entity.Requirement {
	if r == nil {
		return nil
	}

	return &entity.Requirement{
		Id:               r.Id,
		JurisdictionId:   r.JurisdictionId,
		DocumentId:       r.DocumentId,
		RequirementKey:   r.RequirementKey,
		Title:            r.Title,
		Category:         r.Category,
		Description:      r.Description,
		Criticality:      r.Criticality,
		SectionReference: r.SectionReference,
		PageNumber:       r.PageNumber,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *RequirementMapper) ToModel(r *entity.Requirement) *model.Requirement {
	if r == nil {
		return nil
	}

	return &model.Requirement{
		Id:               r.Id,
		JurisdictionId:   r.JurisdictionId,
		DocumentId:       r.DocumentId,
		RequirementKey:   r.RequirementKey,
		Title:            r.Title,
		Category:         r.Category,
		Description:      r.Description,
		Criticality:      r.Criticality,
		SectionReference: r.SectionReference,
		PageNumber:       r.PageNumber,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *RequirementMapper) ToEntities(requirements []*model.Requirement) []*entity.Requirement {
	entities := make([]*entity.Requirement, len(requirements))
	for i, r := range requirements {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RequirementMapper) ToModels(requirements []*entity.Requirement) []*model.Requirement {
	models := make([]*model.Requirement, len(requirements))
	for i, r := range requirements {
		models[i] = m.ToModel(r)
	}
	return models
}

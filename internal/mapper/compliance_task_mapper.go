package mapper

import (
	"time"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/model"
)

type ComplianceTaskMapper struct{}

func NewComplianceTaskMapper() *ComplianceTaskMapper {
	return &ComplianceTaskMapper{}
}

func (m *ComplianceTaskMapper) ToEntity(t *model.ComplianceTask) *entity.ComplianceTask {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.ComplianceTask{
		Id:             t.Id,
		OrganizationId: t.OrganizationId,
		JurisdictionId: t.JurisdictionId,
		SessionId:      t.SessionId,
		RequirementId:  t.RequirementId,
		RequirementKey: t.RequirementKey,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		SourceType:     t.SourceType,
		DueDate:        t.DueDate,
		CompletedDate:  t.CompletedDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ComplianceTaskMapper) ToModel(t *entity.ComplianceTask) *model.ComplianceTask {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.ComplianceTask{
		Id:             t.Id,
		OrganizationId: t.OrganizationId,
		JurisdictionId: t.JurisdictionId,
		SessionId:      t.SessionId,
		RequirementId:  t.RequirementId,
		RequirementKey: t.RequirementKey,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		SourceType:     t.SourceType,
		DueDate:        t.DueDate,
		CompletedDate:  t.CompletedDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ComplianceTaskMapper) ToEntities(tasks []*model.ComplianceTask) []*entity.ComplianceTask {
	entities := make([]*entity.ComplianceTask, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *ComplianceTaskMapper) ToModels(tasks []*entity.ComplianceTask) []*model.ComplianceTask {
	models := make([]*model.ComplianceTask, len(tasks))
	for i, t := range tasks {
		models[i] = m.ToModel(t)
	}
	return models
}

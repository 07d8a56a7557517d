package mapper

import (
	"time"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/model"
)

type AssessmentSessionMapper struct{}

func NewAssessmentSessionMapper() *AssessmentSessionMapper {
	return &AssessmentSessionMapper{}
}

func (m *AssessmentSessionMapper) ToEntity(s *model.AssessmentSession) *entity.AssessmentSession {
	if s == nil {
		return nil
	}

	return &entity.AssessmentSession{
		Id:                 s.Id,
		OrganizationId:     s.OrganizationId,
		SessionType:        s.SessionType,
		SourceDocumentName: s.SourceDocumentName,
		Status:             s.Status,
		AssessmentMethod:   s.AssessmentMethod,
		TotalRequirements:  s.TotalRequirements,
		CompliantCount:     s.CompliantCount,
		PartialCount:       s.PartialCount,
		NonCompliantCount:  s.NonCompliantCount,
		NotAddressedCount:  s.NotAddressedCount,
		OverallScore:       s.OverallScore,
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
		CompletedAt:        s.CompletedAt,
	}
}

func (m *AssessmentSessionMapper) ToModel(s *entity.AssessmentSession) *model.AssessmentSession {
	if s == nil {
		return nil
	}

	return &model.AssessmentSession{
		Id:                 s.Id,
		OrganizationId:     s.OrganizationId,
		SessionType:        s.SessionType,
		SourceDocumentName: s.SourceDocumentName,
		Status:             s.Status,
		AssessmentMethod:   s.AssessmentMethod,
		TotalRequirements:  s.TotalRequirements,
		CompliantCount:     s.CompliantCount,
		PartialCount:       s.PartialCount,
		NonCompliantCount:  s.NonCompliantCount,
		NotAddressedCount:  s.NotAddressedCount,
		OverallScore:       s.OverallScore,
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
		CompletedAt:        s.CompletedAt,
	}
}

func (m *AssessmentSessionMapper) ToEntities(sessions []*model.AssessmentSession) []*entity.AssessmentSession {
	entities := make([]*entity.AssessmentSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) *entity.Assessment {
	if a == nil {
		return nil
	}

	return &entity.Assessment{
		Id:              a.Id,
		SessionId:       a.SessionId,
		OrganizationId:  a.OrganizationId,
		RequirementId:   a.RequirementId,
		Status:          a.Status,
		EvidenceText:    a.EvidenceText,
		EvidenceType:    a.EvidenceType,
		GapDescription:  a.GapDescription,
		Recommendation:  a.Recommendation,
		ConfidenceScore: a.ConfidenceScore,
		AssessedAt:      a.AssessedAt,
	}
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) *model.Assessment {
	if a == nil {
		return nil
	}

	assessedAt := a.AssessedAt
	if assessedAt.IsZero() {
		assessedAt = time.Now()
	}

	return &model.Assessment{
		Id:              a.Id,
		SessionId:       a.SessionId,
		OrganizationId:  a.OrganizationId,
		RequirementId:   a.RequirementId,
		Status:          a.Status,
		EvidenceText:    a.EvidenceText,
		EvidenceType:    a.EvidenceType,
		GapDescription:  a.GapDescription,
		Recommendation:  a.Recommendation,
		ConfidenceScore: a.ConfidenceScore,
		AssessedAt:      assessedAt,
	}
}

func (m *AssessmentMapper) ToEntities(assessments []*model.Assessment) []*entity.Assessment {
	entities := make([]*entity.Assessment, len(assessments))
	for i, a := range assessments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AssessmentMapper) ToModels(assessments []*entity.Assessment) []*model.Assessment {
	models := make([]*model.Assessment, len(assessments))
	for i, a := range assessments {
		models[i] = m.ToModel(a)
	}
	return models
}

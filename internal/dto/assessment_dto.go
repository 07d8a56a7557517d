package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuestionnaireAnswer is one answered question in a questionnaire-type
// assessment; answers are concatenated into the evidence corpus.
type QuestionnaireAnswer struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type RunQuestionnaireAssessmentRequest struct {
	Answers []QuestionnaireAnswer `json:"answers" validate:"required,min=1,dive"`
}

type AssessmentResponse struct {
	Id              uuid.UUID `json:"id"`
	RequirementId   uuid.UUID `json:"requirement_id"`
	RequirementKey  string    `json:"requirement_key,omitempty"`
	Status          string    `json:"status"`
	EvidenceText    string    `json:"evidence_text"`
	GapDescription  string    `json:"gap_description"`
	Recommendation  string    `json:"recommendation"`
	ConfidenceScore float64   `json:"confidence_score"`
	AssessedAt      time.Time `json:"assessed_at"`
}

type SessionResponse struct {
	Id                 uuid.UUID            `json:"session_id"`
	SessionType        string               `json:"session_type"`
	SourceDocumentName string               `json:"source_document_name,omitempty"`
	Status             string               `json:"status"`
	AssessmentMethod   string               `json:"assessment_method,omitempty"`
	OverallScore       float64              `json:"overall_score"`
	TotalRequirements  int                  `json:"total_requirements"`
	Compliant          int                  `json:"compliant"`
	Partial            int                  `json:"partial"`
	NonCompliant       int                  `json:"non_compliant"`
	NotAddressed       int                  `json:"not_addressed"`
	CreatedAt          time.Time            `json:"created_at"`
	CompletedAt        *time.Time           `json:"completed_at"`
	Assessments        []AssessmentResponse `json:"assessments,omitempty"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is one requirement verdict inside a session. Assessments
// are never mutated after creation; re-assessment creates a new session.
type Assessment struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId       uuid.UUID `gorm:"type:uuid;index"`
	OrganizationId  uuid.UUID `gorm:"type:uuid;index"`
	RequirementId   uuid.UUID `gorm:"type:uuid"`
	Status          string
	EvidenceText    string
	EvidenceType    string
	GapDescription  string
	Recommendation  string
	ConfidenceScore float64
	AssessedAt      time.Time
}

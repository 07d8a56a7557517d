package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session lifecycle statuses.
const (
	SessionCreated    = "created"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionFailed     = "failed"
)

type AssessmentSession struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationId     uuid.UUID `gorm:"type:uuid;index"`
	SessionType        string
	SourceDocumentName string
	Status             string
	AssessmentMethod   string
	TotalRequirements  int
	CompliantCount     int
	PartialCount       int
	NonCompliantCount  int
	NotAddressedCount  int
	OverallScore       float64
	CreatedBy          uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	CompletedAt        *time.Time
}

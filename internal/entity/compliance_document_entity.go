package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document processing statuses.
const (
	ProcessingPending    = "pending"
	ProcessingInProgress = "processing"
	ProcessingCompleted  = "completed"
	ProcessingFailed     = "failed"
)

type ComplianceDocument struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	JurisdictionId     uuid.UUID `gorm:"type:uuid;index"`
	Title              string
	DocumentType       string
	FileName           string
	FilePath           string
	UploadedBy         uuid.UUID `gorm:"type:uuid"`
	ProcessingStatus   string
	ExtractedText      string
	ExtractionMetadata map[string]interface{}
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

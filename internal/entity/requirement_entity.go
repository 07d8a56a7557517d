package entity

import (
	"time"

	"github.com/google/uuid"
)

// Requirement is one catalog entry for a jurisdiction. RequirementKey is
// the human-meaningful source reference (e.g. "Article_5.1.a"), unique
// within the jurisdiction after aggregation but not globally.
type Requirement struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	JurisdictionId   uuid.UUID `gorm:"type:uuid;index"`
	DocumentId       *uuid.UUID
	RequirementKey   string
	Title            string
	Category         string
	Description      string
	Criticality      string
	SectionReference string
	PageNumber       *int
	IsActive         bool
	CreatedAt        time.Time
}

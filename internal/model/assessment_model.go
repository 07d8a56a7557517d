package model

import (
	"time"

	"github.com/google/uuid"
)

type Assessment struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_requirement"`
	OrganizationId  uuid.UUID `gorm:"type:uuid;not null;index"`
	RequirementId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_requirement"`
	Status          string    `gorm:"type:varchar(20);not null"`
	EvidenceText    string    `gorm:"type:text"`
	EvidenceType    string    `gorm:"type:varchar(50)"`
	GapDescription  string    `gorm:"type:text"`
	Recommendation  string    `gorm:"type:text"`
	ConfidenceScore float64   `gorm:"not null;default:0"`
	AssessedAt      time.Time `gorm:""`
}

func (Assessment) TableName() string {
	return "compliance_assessments"
}

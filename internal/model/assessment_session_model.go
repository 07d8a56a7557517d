package model

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentSession struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionType        string     `gorm:"type:varchar(50);not null"`
	SourceDocumentName string     `gorm:"type:varchar(255)"`
	Status             string     `gorm:"type:varchar(20);not null;default:'created';index"`
	AssessmentMethod   string     `gorm:"type:varchar(50)"`
	TotalRequirements  int        `gorm:"not null;default:0"`
	CompliantCount     int        `gorm:"not null;default:0"`
	PartialCount       int        `gorm:"not null;default:0"`
	NonCompliantCount  int        `gorm:"not null;default:0"`
	NotAddressedCount  int        `gorm:"not null;default:0"`
	OverallScore       float64    `gorm:"not null;default:0"`
	CreatedBy          uuid.UUID  `gorm:"type:uuid"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	CompletedAt        *time.Time `gorm:""`
}

func (AssessmentSession) TableName() string {
	return "assessment_sessions"
}

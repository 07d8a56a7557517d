package model

import (
	"time"

	"github.com/google/uuid"
)

type ComplianceTask struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID  `gorm:"type:uuid;not null;index"`
	JurisdictionId *uuid.UUID `gorm:"type:uuid;index"`
	SessionId      *uuid.UUID `gorm:"type:uuid;index"`
	RequirementId  *uuid.UUID `gorm:"type:uuid"`
	RequirementKey string     `gorm:"type:varchar(255)"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:'todo';index"`
	Priority       string     `gorm:"type:varchar(20);not null;default:'medium'"`
	SourceType     string     `gorm:"type:varchar(50)"`
	DueDate        *time.Time `gorm:""`
	CompletedDate  *time.Time `gorm:""`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (ComplianceTask) TableName() string {
	return "compliance_tasks"
}

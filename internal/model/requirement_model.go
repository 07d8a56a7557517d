package model

import (
	"time"

	"github.com/google/uuid"
)

type Requirement struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JurisdictionId   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_jurisdiction_requirement_key"`
	DocumentId       *uuid.UUID `gorm:"type:uuid;index"`
	RequirementKey   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_jurisdiction_requirement_key"`
	Title            string     `gorm:"type:varchar(500);not null"`
	Category         string     `gorm:"type:varchar(100)"`
	Description      string     `gorm:"type:text"`
	Criticality      string     `gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	SectionReference string     `gorm:"type:varchar(255)"`
	PageNumber       *int       `gorm:""`
	IsActive         bool       `gorm:"not null;default:true;index"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
}

func (Requirement) TableName() string {
	return "compliance_requirements"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ComplianceDocument struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JurisdictionId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title              string         `gorm:"type:varchar(255);not null"`
	DocumentType       string         `gorm:"type:varchar(50)"`
	FileName           string         `gorm:"type:varchar(255)"`
	FilePath           string         `gorm:"type:varchar(500)"`
	UploadedBy         uuid.UUID      `gorm:"type:uuid"`
	ProcessingStatus   string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	ExtractedText      string         `gorm:"type:text"`
	ExtractionMetadata datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (ComplianceDocument) TableName() string {
	return "compliance_documents"
}

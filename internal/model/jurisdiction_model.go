package model

import (
	"time"

	"github.com/google/uuid"
)

type Jurisdiction struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string     `gorm:"type:varchar(255);not null"`
	RegulationType string     `gorm:"type:varchar(50);not null;index"`
	Description    string     `gorm:"type:text"`
	Region         string     `gorm:"type:varchar(100)"`
	EffectiveDate  *time.Time `gorm:""`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Jurisdiction) TableName() string {
	return "jurisdictions"
}

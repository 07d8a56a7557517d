package entity

import (
	"time"

	"github.com/google/uuid"
)

type Jurisdiction struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	RegulationType string
	Description    string
	Region         string
	EffectiveDate  *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

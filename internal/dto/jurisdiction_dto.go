package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJurisdictionRequest struct {
	Name           string     `json:"name" validate:"required"`
	RegulationType string     `json:"regulation_type" validate:"required,oneof=eu_ai_act iso_42001 us_ai_governance gdpr ccpa custom"`
	Description    string     `json:"description"`
	Region         string     `json:"region"`
	EffectiveDate  *time.Time `json:"effective_date"`
}

type CreateJurisdictionResponse struct {
	Id uuid.UUID `json:"id"`
}

type JurisdictionResponse struct {
	Id             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	RegulationType string     `json:"regulation_type"`
	Description    string     `json:"description"`
	Region         string     `json:"region"`
	EffectiveDate  *time.Time `json:"effective_date"`
	RequirementCnt int64      `json:"requirement_count"`
	CreatedAt      time.Time  `json:"created_at"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type RequirementResponse struct {
	Id               uuid.UUID `json:"id"`
	JurisdictionId   uuid.UUID `json:"jurisdiction_id"`
	RequirementKey   string    `json:"requirement_id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	Criticality      string    `json:"criticality"`
	SectionReference string    `json:"section_reference,omitempty"`
	PageNumber       *int      `json:"page_number,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

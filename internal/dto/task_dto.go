package dto

import (
	"time"

	"github.com/google/uuid"
)

type TaskResponse struct {
	Id             uuid.UUID  `json:"id"`
	JurisdictionId *uuid.UUID `json:"jurisdiction_id,omitempty"`
	SessionId      *uuid.UUID `json:"session_id,omitempty"`
	RequirementKey string     `json:"requirement_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	SourceType     string     `json:"source_type,omitempty"`
	DueDate        *time.Time `json:"due_date"`
	CompletedDate  *time.Time `json:"completed_date"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateTaskStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=todo in_progress review completed blocked cancelled"`
}

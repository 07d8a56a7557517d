package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskReview     = "review"
	TaskCompleted  = "completed"
	TaskBlocked    = "blocked"
	TaskCancelled  = "cancelled"
)

// Task priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// ComplianceTask is a remediation item generated from a gap found during
// an assessment, or created manually.
type ComplianceTask struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationId uuid.UUID `gorm:"type:uuid;index"`
	JurisdictionId *uuid.UUID
	SessionId      *uuid.UUID
	RequirementId  *uuid.UUID
	RequirementKey string
	Title          string
	Description    string
	Status         string
	Priority       string
	SourceType     string
	DueDate        *time.Time
	CompletedDate  *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByJurisdictionID filters rows belonging to one jurisdiction.
type ByJurisdictionID struct {
	ID uuid.UUID
}

func (s ByJurisdictionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("jurisdiction_id = ?", s.ID)
}

// ByJurisdictionIDs filters rows belonging to a set of jurisdictions.
type ByJurisdictionIDs struct {
	JurisdictionIDs []uuid.UUID
}

func (s ByJurisdictionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("jurisdiction_id IN ?", s.JurisdictionIDs)
}

// ByOrganizationID scopes tenant-owned rows.
type ByOrganizationID struct {
	ID uuid.UUID
}

func (s ByOrganizationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.ID)
}

// BySessionID filters assessments and tasks of one session.
type BySessionID struct {
	ID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.ID)
}

// ByRequirementKey filters by the human-meaningful requirement reference.
type ByRequirementKey struct {
	Key string
}

func (s ByRequirementKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requirement_key = ?", s.Key)
}

// ActiveOnly keeps requirements that have not been soft-disabled.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByStatus filters on a status column (sessions, tasks, documents use
// different value sets but share the column name pattern).
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByProcessingStatus filters documents by pipeline state.
type ByProcessingStatus struct {
	Status string
}

func (s ByProcessingStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("processing_status = ?", s.Status)
}

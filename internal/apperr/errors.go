// Package apperr holds the typed domain errors services return and the
// error-handler middleware maps to HTTP status codes.
package apperr

import "errors"

var (
	// ErrNoRequirementsExtracted: extraction produced an empty catalog.
	// Surfaced instead of silently persisting nothing.
	ErrNoRequirementsExtracted = errors.New("no requirements could be extracted from document")

	ErrJurisdictionNotFound = errors.New("jurisdiction not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrRequirementNotFound  = errors.New("requirement not found")
	ErrSessionNotFound      = errors.New("assessment session not found")
	ErrTaskNotFound         = errors.New("task not found")

	// ErrNoRequirementsForOrganization: an assessment was requested but
	// the organization's jurisdictions have no active requirements.
	ErrNoRequirementsForOrganization = errors.New("no compliance requirements found for organization")

	// ErrSessionPersistence: assessment results could not be written; the
	// session is marked failed but partial counts are kept.
	ErrSessionPersistence = errors.New("failed to persist assessment session")

	ErrTextExtraction     = errors.New("failed to extract text from document")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size")
	ErrServiceUnavailable = errors.New("dependent service unavailable")
)

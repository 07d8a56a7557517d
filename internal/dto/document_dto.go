package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProcessDocumentMessage is the pub/sub payload that triggers catalog
// extraction for an uploaded regulatory document.
type ProcessDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}

type UploadDocumentRequest struct {
	JurisdictionId uuid.UUID `json:"jurisdiction_id" validate:"required"`
	Title          string    `json:"title" validate:"required"`
	DocumentType   string    `json:"document_type"`
}

type UploadDocumentResponse struct {
	Id               uuid.UUID `json:"id"`
	ProcessingStatus string    `json:"processing_status"`
}

type DocumentResponse struct {
	Id                 uuid.UUID              `json:"id"`
	JurisdictionId     uuid.UUID              `json:"jurisdiction_id"`
	Title              string                 `json:"title"`
	DocumentType       string                 `json:"document_type"`
	FileName           string                 `json:"file_name"`
	ProcessingStatus   string                 `json:"processing_status"`
	ExtractionMetadata map[string]interface{} `json:"extraction_metadata,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          *time.Time             `json:"updated_at"`
}

type ExtractionResultResponse struct {
	DocumentId          uuid.UUID              `json:"document_id"`
	RequirementsCreated int                    `json:"requirements_created"`
	ExtractionMetadata  map[string]interface{} `json:"extraction_metadata"`
}

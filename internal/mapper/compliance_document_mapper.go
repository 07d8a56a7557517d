package mapper

import (
	"encoding/json"
	"time"

	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/model"

	"gorm.io/datatypes"
)

type ComplianceDocumentMapper struct{}

func NewComplianceDocumentMapper() *ComplianceDocumentMapper {
	return &ComplianceDocumentMapper{}
}

func (m *ComplianceDocumentMapper) ToEntity(d *model.ComplianceDocument) *entity.ComplianceDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	var metadata map[string]interface{}
	if len(d.ExtractionMetadata) > 0 {
		// Malformed stored metadata degrades to nil, not an error.
		_ = json.Unmarshal(d.ExtractionMetadata, &metadata)
	}

	return &entity.ComplianceDocument{
		Id:                 d.Id,
		JurisdictionId:     d.JurisdictionId,
		Title:              d.Title,
		DocumentType:       d.DocumentType,
		FileName:           d.FileName,
		FilePath:           d.FilePath,
		UploadedBy:         d.UploadedBy,
		ProcessingStatus:   d.ProcessingStatus,
		ExtractedText:      d.ExtractedText,
		ExtractionMetadata: metadata,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ComplianceDocumentMapper) ToModel(d *entity.ComplianceDocument) *model.ComplianceDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	var metadata datatypes.JSON
	if d.ExtractionMetadata != nil {
		if raw, err := json.Marshal(d.ExtractionMetadata); err == nil {
			metadata = raw
		}
	}

	return &model.ComplianceDocument{
		Id:                 d.Id,
		JurisdictionId:     d.JurisdictionId,
		Title:              d.Title,
		DocumentType:       d.DocumentType,
		FileName:           d.FileName,
		FilePath:           d.FilePath,
		UploadedBy:         d.UploadedBy,
		ProcessingStatus:   d.ProcessingStatus,
		ExtractedText:      d.ExtractedText,
		ExtractionMetadata: metadata,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ComplianceDocumentMapper) ToEntities(docs []*model.ComplianceDocument) []*entity.ComplianceDocument {
	entities := make([]*entity.ComplianceDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

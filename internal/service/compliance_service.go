package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/pkg/logger"
	"ai-compliance-be/internal/repository/memory"
	"ai-compliance-be/internal/repository/specification"
	"ai-compliance-be/internal/repository/unitofwork"
	"ai-compliance-be/pkg/compliance"
	"ai-compliance-be/pkg/docproc"
	"ai-compliance-be/pkg/events"
	"ai-compliance-be/pkg/extraction"
	"ai-compliance-be/pkg/lock"
	pktNats "ai-compliance-be/pkg/nats"

	"github.com/google/uuid"
)

type IComplianceService interface {
	ProcessDocument(ctx context.Context, documentId uuid.UUID) error
}

type complianceService struct {
	uowFactory     unitofwork.RepositoryFactory
	extractor      *extraction.Extractor
	docProcessor   *docproc.Processor
	locker         lock.Locker
	catalogCache   *memory.CatalogCache
	eventPublisher *pktNats.Publisher
	lockTTL        time.Duration
	logger         logger.ILogger
}

func NewComplianceService(
	uowFactory unitofwork.RepositoryFactory,
	extractor *extraction.Extractor,
	docProcessor *docproc.Processor,
	locker lock.Locker,
	catalogCache *memory.CatalogCache,
	eventPublisher *pktNats.Publisher,
	lockTTL time.Duration,
	log logger.ILogger,
) IComplianceService {
	return &complianceService{
		uowFactory:     uowFactory,
		extractor:      extractor,
		docProcessor:   docProcessor,
		locker:         locker,
		catalogCache:   catalogCache,
		eventPublisher: eventPublisher,
		lockTTL:        lockTTL,
		logger:         log,
	}
}

// ProcessDocument runs the extraction pipeline for one uploaded document
// and merges the result into the jurisdiction's requirement catalog.
// Concurrent runs against the same jurisdiction serialize on a lease so
// the unique requirement keys are checked against a settled catalog.
func (s *complianceService) ProcessDocument(ctx context.Context, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.ComplianceDocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if document == nil {
		return apperr.ErrDocumentNotFound
	}

	jurisdiction, err := uow.JurisdictionRepository().FindOne(ctx, specification.ByID{ID: document.JurisdictionId})
	if err != nil {
		return err
	}
	if jurisdiction == nil {
		return apperr.ErrJurisdictionNotFound
	}

	document.ProcessingStatus = entity.ProcessingInProgress
	now := time.Now()
	document.UpdatedAt = &now
	if err := uow.ComplianceDocumentRepository().Update(ctx, document); err != nil {
		return err
	}

	text := document.ExtractedText
	sourceFormat := ""
	if strings.TrimSpace(text) == "" {
		text, sourceFormat = s.docProcessor.ExtractTextFromFile(document.FilePath, document.FileName)
		if sourceFormat == docproc.TypeError || strings.TrimSpace(text) == "" {
			s.markFailed(ctx, document, map[string]interface{}{
				"error":         "text extraction failed",
				"source_format": sourceFormat,
			})
			return apperr.ErrTextExtraction
		}
		document.ExtractedText = text
	}

	records, meta := s.extractor.ExtractDocument(ctx, text, compliance.Framework(jurisdiction.RegulationType))
	if len(records) == 0 {
		s.markFailed(ctx, document, map[string]interface{}{
			"error":         "no requirements extracted",
			"method":        meta.Method,
			"chunk_count":   meta.ChunkCount,
			"text_length":   meta.TextLength,
			"source_format": sourceFormat,
		})
		return apperr.ErrNoRequirementsExtracted
	}

	release, err := s.locker.Acquire(ctx, "jurisdiction:"+jurisdiction.Id.String(), s.lockTTL)
	if err != nil {
		return err
	}
	defer release()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Re-check the catalog under the lease: another document may have
	// landed the same requirement keys since extraction started.
	existing, err := uow.RequirementRepository().FindAll(ctx,
		specification.ByJurisdictionID{ID: jurisdiction.Id},
	)
	if err != nil {
		return err
	}
	existingByKey := make(map[string]*entity.Requirement, len(existing))
	for _, r := range existing {
		existingByKey[r.RequirementKey] = r
	}

	var newRequirements []*entity.Requirement
	for _, rec := range records {
		if prior, ok := existingByKey[rec.RequirementID]; ok {
			// Persisted rows are otherwise immutable; a re-extraction may
			// replace only the description, and only with a longer one, the
			// same rule the in-pipeline aggregator applies across chunks.
			if len(rec.Description) > len(prior.Description) {
				prior.Description = rec.Description
				if err := uow.RequirementRepository().Update(ctx, prior); err != nil {
					return err
				}
			}
			continue
		}
		newRequirements = append(newRequirements, &entity.Requirement{
			Id:               uuid.New(),
			JurisdictionId:   jurisdiction.Id,
			DocumentId:       &document.Id,
			RequirementKey:   rec.RequirementID,
			Title:            rec.Title,
			Category:         rec.Category,
			Description:      rec.Description,
			Criticality:      string(rec.Criticality),
			SectionReference: rec.SectionReference,
			PageNumber:       rec.PageNumber,
			IsActive:         true,
			CreatedAt:        time.Now(),
		})
	}

	if len(newRequirements) > 0 {
		if err := uow.RequirementRepository().CreateBulk(ctx, newRequirements); err != nil {
			return err
		}
	}

	document.ProcessingStatus = entity.ProcessingCompleted
	document.ExtractionMetadata = map[string]interface{}{
		"method":               meta.Method,
		"chunk_count":          meta.ChunkCount,
		"text_length":          meta.TextLength,
		"requirements_created": len(newRequirements),
	}
	if sourceFormat != "" {
		document.ExtractionMetadata["source_format"] = sourceFormat
	}
	completedAt := time.Now()
	document.UpdatedAt = &completedAt
	if err := uow.ComplianceDocumentRepository().Update(ctx, document); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.catalogCache.Invalidate(jurisdiction.Id)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeCatalogUpdated,
			Data: map[string]interface{}{
				"jurisdiction_id":      jurisdiction.Id,
				"document_id":          document.Id,
				"requirements_created": len(newRequirements),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ComplianceService", "Failed to publish CATALOG_UPDATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("ComplianceService", fmt.Sprintf("Catalog updated for jurisdiction %s", jurisdiction.Id), map[string]interface{}{
		"document_id":          document.Id.String(),
		"method":               meta.Method,
		"chunk_count":          meta.ChunkCount,
		"requirements_created": len(newRequirements),
	})

	return nil
}

// markFailed flips the document to failed outside any transaction so the
// status survives whatever caused the failure.
func (s *complianceService) markFailed(ctx context.Context, document *entity.ComplianceDocument, metadata map[string]interface{}) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	document.ProcessingStatus = entity.ProcessingFailed
	document.ExtractionMetadata = metadata
	now := time.Now()
	document.UpdatedAt = &now
	if err := uow.ComplianceDocumentRepository().Update(ctx, document); err != nil {
		s.logger.Error("ComplianceService", fmt.Sprintf("Failed to mark document %s as failed", document.Id), map[string]interface{}{"error": err.Error()})
	}
}

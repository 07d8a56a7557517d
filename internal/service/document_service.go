package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
	"ai-compliance-be/internal/repository/unitofwork"
	"ai-compliance-be/pkg/docproc"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadDocumentRequest, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error)
	List(ctx context.Context, jurisdictionId uuid.UUID) ([]*dto.DocumentResponse, error)
	ExtractionResult(ctx context.Context, id uuid.UUID) (*dto.ExtractionResultResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	uploadDir        string
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	uploadDir string,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		uploadDir:        uploadDir,
	}
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadDocumentRequest, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error) {
	if !docproc.IsSupportedFormat(file.Filename) {
		return nil, apperr.ErrUnsupportedFormat
	}
	if !docproc.ValidateFileSize(file.Size) {
		return nil, apperr.ErrFileTooLarge
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdiction, err := uow.JurisdictionRepository().FindOne(ctx, specification.ByID{ID: req.JurisdictionId})
	if err != nil {
		return nil, err
	}
	if jurisdiction == nil {
		return nil, apperr.ErrJurisdictionNotFound
	}

	documentId := uuid.New()
	filePath, err := s.saveFile(documentId, file)
	if err != nil {
		return nil, err
	}

	document := entity.ComplianceDocument{
		Id:               documentId,
		JurisdictionId:   req.JurisdictionId,
		Title:            req.Title,
		DocumentType:     req.DocumentType,
		FileName:         file.Filename,
		FilePath:         filePath,
		UploadedBy:       userId,
		ProcessingStatus: entity.ProcessingPending,
		CreatedAt:        time.Now(),
	}

	if err := uow.ComplianceDocumentRepository().Create(ctx, &document); err != nil {
		return nil, err
	}

	// Extraction runs async; the consumer picks this message up.
	msgPayload := dto.ProcessDocumentMessage{
		DocumentId: document.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		// The document row stays pending; without a queued message the
		// pipeline will never pick it up, so surface the outage.
		return nil, fmt.Errorf("%w: %v", apperr.ErrServiceUnavailable, err)
	}

	return &dto.UploadDocumentResponse{
		Id:               document.Id,
		ProcessingStatus: document.ProcessingStatus,
	}, nil
}

func (s *documentService) saveFile(documentId uuid.UUID, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Prefix with the document id so filename collisions can't clobber files
	destPath := filepath.Join(s.uploadDir, fmt.Sprintf("%s_%s", documentId, filepath.Base(file.Filename)))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return "", err
	}

	return destPath, nil
}

func (s *documentService) Show(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.ComplianceDocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperr.ErrDocumentNotFound
	}

	return toDocumentResponse(document), nil
}

func (s *documentService) List(ctx context.Context, jurisdictionId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	documents, err := uow.ComplianceDocumentRepository().FindAll(ctx,
		specification.ByJurisdictionID{ID: jurisdictionId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		response = append(response, toDocumentResponse(d))
	}

	return response, nil
}

func (s *documentService) ExtractionResult(ctx context.Context, id uuid.UUID) (*dto.ExtractionResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.ComplianceDocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperr.ErrDocumentNotFound
	}

	created := 0
	if document.ExtractionMetadata != nil {
		if v, ok := document.ExtractionMetadata["requirements_created"].(float64); ok {
			created = int(v)
		}
	}

	return &dto.ExtractionResultResponse{
		DocumentId:          document.Id,
		RequirementsCreated: created,
		ExtractionMetadata:  document.ExtractionMetadata,
	}, nil
}

func toDocumentResponse(d *entity.ComplianceDocument) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:                 d.Id,
		JurisdictionId:     d.JurisdictionId,
		Title:              d.Title,
		DocumentType:       d.DocumentType,
		FileName:           d.FileName,
		ProcessingStatus:   d.ProcessingStatus,
		ExtractionMetadata: d.ExtractionMetadata,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

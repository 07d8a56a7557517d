package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/pkg/logger"
	"ai-compliance-be/internal/pkg/mailer"
	"ai-compliance-be/internal/repository/specification"
	"ai-compliance-be/internal/repository/unitofwork"
	"ai-compliance-be/pkg/assessment"
	"ai-compliance-be/pkg/compliance"
	"ai-compliance-be/pkg/docproc"
	"ai-compliance-be/pkg/events"
	pktNats "ai-compliance-be/pkg/nats"

	"github.com/google/uuid"
)

// Session types.
const (
	SessionTypeDocument      = "document"
	SessionTypeQuestionnaire = "questionnaire"
)

type IAssessmentService interface {
	RunDocumentAssessment(ctx context.Context, orgId, userId uuid.UUID, userEmail string, file *multipart.FileHeader) (*dto.SessionResponse, error)
	RunQuestionnaireAssessment(ctx context.Context, orgId, userId uuid.UUID, userEmail string, req *dto.RunQuestionnaireAssessmentRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context, orgId uuid.UUID) ([]*dto.SessionResponse, error)
	ShowSession(ctx context.Context, orgId, sessionId uuid.UUID) (*dto.SessionResponse, error)
}

type assessmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	assessor       *assessment.Assessor
	docProcessor   *docproc.Processor
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
}

func NewAssessmentService(
	uowFactory unitofwork.RepositoryFactory,
	assessor *assessment.Assessor,
	docProcessor *docproc.Processor,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAssessmentService {
	return &assessmentService{
		uowFactory:     uowFactory,
		assessor:       assessor,
		docProcessor:   docProcessor,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         log,
	}
}

func (s *assessmentService) RunDocumentAssessment(ctx context.Context, orgId, userId uuid.UUID, userEmail string, file *multipart.FileHeader) (*dto.SessionResponse, error) {
	if !docproc.IsSupportedFormat(file.Filename) {
		return nil, apperr.ErrUnsupportedFormat
	}
	if !docproc.ValidateFileSize(file.Size) {
		return nil, apperr.ErrFileTooLarge
	}

	tempPath, err := s.saveTempFile(file)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempPath)

	evidenceText, fileType := s.docProcessor.ExtractTextFromFile(tempPath, file.Filename)
	if fileType == docproc.TypeError || strings.TrimSpace(evidenceText) == "" {
		return nil, apperr.ErrTextExtraction
	}

	return s.runAssessment(ctx, orgId, userId, userEmail, SessionTypeDocument, file.Filename, evidenceText)
}

func (s *assessmentService) RunQuestionnaireAssessment(ctx context.Context, orgId, userId uuid.UUID, userEmail string, req *dto.RunQuestionnaireAssessmentRequest) (*dto.SessionResponse, error) {
	var sb strings.Builder
	for _, answer := range req.Answers {
		sb.WriteString("Question: ")
		sb.WriteString(answer.Question)
		sb.WriteString("\nAnswer: ")
		sb.WriteString(answer.Answer)
		sb.WriteString("\n\n")
	}

	return s.runAssessment(ctx, orgId, userId, userEmail, SessionTypeQuestionnaire, "", sb.String())
}

// runAssessment executes the full gap analysis: load the active catalog,
// assess every requirement against the evidence corpus, then persist the
// session, verdicts and remediation tasks in one transaction.
func (s *assessmentService) runAssessment(ctx context.Context, orgId, userId uuid.UUID, userEmail, sessionType, sourceName, evidenceText string) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdictions, err := uow.JurisdictionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	regulationByJurisdiction := make(map[uuid.UUID]string, len(jurisdictions))
	for _, j := range jurisdictions {
		regulationByJurisdiction[j.Id] = j.RegulationType
	}

	requirements, err := uow.RequirementRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if len(requirements) == 0 {
		return nil, apperr.ErrNoRequirementsForOrganization
	}

	session := entity.AssessmentSession{
		Id:                 uuid.New(),
		OrganizationId:     orgId,
		SessionType:        sessionType,
		SourceDocumentName: sourceName,
		Status:             entity.SessionInProgress,
		CreatedBy:          userId,
		CreatedAt:          time.Now(),
	}
	if err := uow.AssessmentSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	// Requirement keys are unique per jurisdiction, not globally, so each
	// jurisdiction's catalog is assessed as its own batch.
	byJurisdiction := make(map[uuid.UUID][]*entity.Requirement)
	for _, r := range requirements {
		byJurisdiction[r.JurisdictionId] = append(byJurisdiction[r.JurisdictionId], r)
	}

	var allRecords []compliance.AssessmentRecord
	var assessments []*entity.Assessment
	usedLLM := false
	now := time.Now()

	for jurisdictionId, group := range byJurisdiction {
		framework := compliance.Framework(regulationByJurisdiction[jurisdictionId])

		byKey := make(map[string]*entity.Requirement, len(group))
		records := make([]compliance.RequirementRecord, 0, len(group))
		for _, r := range group {
			byKey[r.RequirementKey] = r
			records = append(records, compliance.RequirementRecord{
				RequirementID: r.RequirementKey,
				Title:         r.Title,
				Category:      r.Category,
				Description:   r.Description,
				Criticality:   compliance.Criticality(r.Criticality),
			})
		}

		verdicts, method := s.assessor.Assess(ctx, evidenceText, framework, records)
		if method == assessment.MethodLLM {
			usedLLM = true
		}

		for _, verdict := range verdicts {
			requirement, ok := byKey[verdict.RequirementID]
			if !ok {
				continue
			}
			allRecords = append(allRecords, verdict)
			assessments = append(assessments, &entity.Assessment{
				Id:              uuid.New(),
				SessionId:       session.Id,
				OrganizationId:  orgId,
				RequirementId:   requirement.Id,
				Status:          string(verdict.Status),
				EvidenceText:    verdict.EvidenceText,
				EvidenceType:    sessionType,
				GapDescription:  verdict.GapDescription,
				Recommendation:  verdict.Recommendation,
				ConfidenceScore: verdict.ConfidenceScore,
				AssessedAt:      now,
			})
		}
	}

	summary := assessment.AggregateScores(allRecords)
	tasks := s.generateTasks(orgId, session.Id, assessments, requirements, now)

	method := assessment.MethodFallback
	if usedLLM {
		method = assessment.MethodLLM
	}

	completedAt := time.Now()
	session.Status = entity.SessionCompleted
	session.AssessmentMethod = method
	session.TotalRequirements = summary.Total
	session.CompliantCount = summary.Compliant
	session.PartialCount = summary.Partial
	session.NonCompliantCount = summary.NonCompliant
	session.NotAddressedCount = summary.NotAddressed
	session.OverallScore = summary.OverallScore
	session.CompletedAt = &completedAt

	if err := s.persistResults(ctx, &session, assessments, tasks); err != nil {
		s.logger.Error("AssessmentService", fmt.Sprintf("Failed to persist session %s", session.Id), map[string]interface{}{"error": err.Error()})
		s.markSessionFailed(ctx, &session)
		return nil, apperr.ErrSessionPersistence
	}

	s.logger.Info("AssessmentService", fmt.Sprintf("Session %s completed", session.Id), map[string]interface{}{
		"method":        method,
		"overall_score": summary.OverallScore,
		"total":         summary.Total,
		"tasks_created": len(tasks),
	})

	s.notifyCompleted(ctx, &session, userEmail)

	return s.toSessionResponse(&session, assessments, requirements), nil
}

func (s *assessmentService) persistResults(ctx context.Context, session *entity.AssessmentSession, assessments []*entity.Assessment, tasks []*entity.ComplianceTask) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if len(assessments) > 0 {
		if err := uow.AssessmentRepository().CreateBulk(ctx, assessments); err != nil {
			return err
		}
	}
	if len(tasks) > 0 {
		if err := uow.ComplianceTaskRepository().CreateBulk(ctx, tasks); err != nil {
			return err
		}
	}
	if err := uow.AssessmentSessionRepository().Update(ctx, session); err != nil {
		return err
	}

	return uow.Commit()
}

// markSessionFailed keeps the computed counts on the session so a failed
// run is still diagnosable, but flips the status.
func (s *assessmentService) markSessionFailed(ctx context.Context, session *entity.AssessmentSession) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session.Status = entity.SessionFailed
	session.CompletedAt = nil
	if err := uow.AssessmentSessionRepository().Update(ctx, session); err != nil {
		s.logger.Error("AssessmentService", fmt.Sprintf("Failed to mark session %s as failed", session.Id), map[string]interface{}{"error": err.Error()})
	}
}

// generateTasks creates one remediation task per gap. Anything short of
// COMPLIANT counts as a gap.
func (s *assessmentService) generateTasks(orgId, sessionId uuid.UUID, assessments []*entity.Assessment, requirements []*entity.Requirement, now time.Time) []*entity.ComplianceTask {
	requirementById := make(map[uuid.UUID]*entity.Requirement, len(requirements))
	for _, r := range requirements {
		requirementById[r.Id] = r
	}

	var tasks []*entity.ComplianceTask
	for _, a := range assessments {
		if a.Status == string(compliance.StatusCompliant) {
			continue
		}
		requirement, ok := requirementById[a.RequirementId]
		if !ok {
			continue
		}

		priority := taskPriorityFor(requirement.Criticality)
		dueDate := now.AddDate(0, 0, dueOffsetDays(priority))

		description := a.GapDescription
		if a.Recommendation != "" {
			description = description + "\n\nRecommendation: " + a.Recommendation
		}

		sessionRef := sessionId
		jurisdictionRef := requirement.JurisdictionId
		requirementRef := requirement.Id
		tasks = append(tasks, &entity.ComplianceTask{
			Id:             uuid.New(),
			OrganizationId: orgId,
			JurisdictionId: &jurisdictionRef,
			SessionId:      &sessionRef,
			RequirementId:  &requirementRef,
			RequirementKey: requirement.RequirementKey,
			Title:          "Address: " + requirement.Title,
			Description:    description,
			Status:         entity.TaskTodo,
			Priority:       priority,
			SourceType:     "gap_analysis",
			DueDate:        &dueDate,
			CreatedAt:      now,
		})
	}

	return tasks
}

func taskPriorityFor(criticality string) string {
	switch compliance.NormalizeCriticality(criticality) {
	case compliance.CriticalityCritical:
		return entity.PriorityCritical
	case compliance.CriticalityHigh:
		return entity.PriorityHigh
	case compliance.CriticalityLow:
		return entity.PriorityLow
	default:
		return entity.PriorityMedium
	}
}

// dueOffsetDays staggers remediation deadlines by urgency.
func dueOffsetDays(priority string) int {
	switch priority {
	case entity.PriorityCritical:
		return 7
	case entity.PriorityHigh:
		return 14
	case entity.PriorityLow:
		return 60
	default:
		return 30
	}
}

func (s *assessmentService) notifyCompleted(ctx context.Context, session *entity.AssessmentSession, userEmail string) {
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeAssessmentCompleted,
			Data: map[string]interface{}{
				"session_id":      session.Id,
				"organization_id": session.OrganizationId,
				"overall_score":   session.OverallScore,
				"method":          session.AssessmentMethod,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AssessmentService", "Failed to publish ASSESSMENT_COMPLETED event", map[string]interface{}{"error": err.Error()})
		}
	}

	// Email is auxiliary; never fail the run over it
	if s.emailService != nil && userEmail != "" {
		summary := mailer.AssessmentSummary{
			SessionId:          session.Id.String(),
			SourceDocumentName: session.SourceDocumentName,
			OverallScore:       session.OverallScore,
			TotalRequirements:  session.TotalRequirements,
			Compliant:          session.CompliantCount,
			Partial:            session.PartialCount,
			NonCompliant:       session.NonCompliantCount,
			NotAddressed:       session.NotAddressedCount,
		}
		if err := s.emailService.SendAssessmentSummary(userEmail, summary); err != nil {
			s.logger.Warn("AssessmentService", "Failed to send assessment summary email", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *assessmentService) ListSessions(ctx context.Context, orgId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.AssessmentSessionRepository().FindAll(ctx,
		specification.ByOrganizationID{ID: orgId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, s.toSessionResponse(session, nil, nil))
	}

	return response, nil
}

func (s *assessmentService) ShowSession(ctx context.Context, orgId, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.AssessmentSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByOrganizationID{ID: orgId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperr.ErrSessionNotFound
	}

	assessments, err := uow.AssessmentRepository().FindAll(ctx,
		specification.BySessionID{ID: sessionId},
	)
	if err != nil {
		return nil, err
	}

	var requirements []*entity.Requirement
	if len(assessments) > 0 {
		ids := make([]uuid.UUID, 0, len(assessments))
		for _, a := range assessments {
			ids = append(ids, a.RequirementId)
		}
		requirements, err = uow.RequirementRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
		if err != nil {
			return nil, err
		}
	}

	return s.toSessionResponse(session, assessments, requirements), nil
}

func (s *assessmentService) toSessionResponse(session *entity.AssessmentSession, assessments []*entity.Assessment, requirements []*entity.Requirement) *dto.SessionResponse {
	keyByRequirementId := make(map[uuid.UUID]string, len(requirements))
	for _, r := range requirements {
		keyByRequirementId[r.Id] = r.RequirementKey
	}

	response := &dto.SessionResponse{
		Id:                 session.Id,
		SessionType:        session.SessionType,
		SourceDocumentName: session.SourceDocumentName,
		Status:             session.Status,
		AssessmentMethod:   session.AssessmentMethod,
		OverallScore:       session.OverallScore,
		TotalRequirements:  session.TotalRequirements,
		Compliant:          session.CompliantCount,
		Partial:            session.PartialCount,
		NonCompliant:       session.NonCompliantCount,
		NotAddressed:       session.NotAddressedCount,
		CreatedAt:          session.CreatedAt,
		CompletedAt:        session.CompletedAt,
	}

	for _, a := range assessments {
		response.Assessments = append(response.Assessments, dto.AssessmentResponse{
			Id:              a.Id,
			RequirementId:   a.RequirementId,
			RequirementKey:  keyByRequirementId[a.RequirementId],
			Status:          a.Status,
			EvidenceText:    a.EvidenceText,
			GapDescription:  a.GapDescription,
			Recommendation:  a.Recommendation,
			ConfidenceScore: a.ConfidenceScore,
			AssessedAt:      a.AssessedAt,
		})
	}

	return response
}

func (s *assessmentService) saveTempFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dest, err := os.CreateTemp("", "evidence_*"+filepath.Ext(file.Filename))
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(dest.Name())
		return "", err
	}

	return dest.Name(), nil
}

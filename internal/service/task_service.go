package service

import (
	"context"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/specification"
	"ai-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	List(ctx context.Context, orgId uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateStatus(ctx context.Context, orgId uuid.UUID, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
	}
}

func (s *taskService) List(ctx context.Context, orgId uuid.UUID) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tasks, err := uow.ComplianceTaskRepository().FindAll(ctx,
		specification.ByOrganizationID{ID: orgId},
		specification.OrderBy{Field: "due_date"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, toTaskResponse(t))
	}

	return response, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, orgId uuid.UUID, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.ComplianceTaskRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByOrganizationID{ID: orgId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrTaskNotFound
	}

	now := time.Now()
	task.Status = req.Status
	task.UpdatedAt = &now

	// Completion date follows the status both ways so reopened tasks
	// don't keep a stale date.
	if req.Status == entity.TaskCompleted {
		task.CompletedDate = &now
	} else {
		task.CompletedDate = nil
	}

	if err := uow.ComplianceTaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}

	return toTaskResponse(task), nil
}

func toTaskResponse(t *entity.ComplianceTask) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:             t.Id,
		JurisdictionId: t.JurisdictionId,
		SessionId:      t.SessionId,
		RequirementKey: t.RequirementKey,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		SourceType:     t.SourceType,
		DueDate:        t.DueDate,
		CompletedDate:  t.CompletedDate,
		CreatedAt:      t.CreatedAt,
	}
}

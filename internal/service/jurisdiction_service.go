package service

import (
	"context"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/memory"
	"ai-compliance-be/internal/repository/specification"
	"ai-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IJurisdictionService interface {
	Create(ctx context.Context, req *dto.CreateJurisdictionRequest) (*dto.CreateJurisdictionResponse, error)
	List(ctx context.Context) ([]*dto.JurisdictionResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.JurisdictionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListRequirements(ctx context.Context, jurisdictionId uuid.UUID) ([]*dto.RequirementResponse, error)
	ShowRequirement(ctx context.Context, jurisdictionId, requirementId uuid.UUID) (*dto.RequirementResponse, error)
}

type jurisdictionService struct {
	uowFactory   unitofwork.RepositoryFactory
	catalogCache *memory.CatalogCache
}

func NewJurisdictionService(
	uowFactory unitofwork.RepositoryFactory,
	catalogCache *memory.CatalogCache,
) IJurisdictionService {
	return &jurisdictionService{
		uowFactory:   uowFactory,
		catalogCache: catalogCache,
	}
}

func (s *jurisdictionService) Create(ctx context.Context, req *dto.CreateJurisdictionRequest) (*dto.CreateJurisdictionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdiction := entity.Jurisdiction{
		Id:             uuid.New(),
		Name:           req.Name,
		RegulationType: req.RegulationType,
		Description:    req.Description,
		Region:         req.Region,
		EffectiveDate:  req.EffectiveDate,
		CreatedAt:      time.Now(),
	}

	if err := uow.JurisdictionRepository().Create(ctx, &jurisdiction); err != nil {
		return nil, err
	}

	return &dto.CreateJurisdictionResponse{
		Id: jurisdiction.Id,
	}, nil
}

func (s *jurisdictionService) List(ctx context.Context) ([]*dto.JurisdictionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdictions, err := uow.JurisdictionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.JurisdictionResponse, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		count, err := uow.RequirementRepository().Count(ctx,
			specification.ByJurisdictionID{ID: j.Id},
			specification.ActiveOnly{},
		)
		if err != nil {
			return nil, err
		}
		response = append(response, toJurisdictionResponse(j, count))
	}

	return response, nil
}

func (s *jurisdictionService) Show(ctx context.Context, id uuid.UUID) (*dto.JurisdictionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdiction, err := uow.JurisdictionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if jurisdiction == nil {
		return nil, apperr.ErrJurisdictionNotFound
	}

	count, err := uow.RequirementRepository().Count(ctx,
		specification.ByJurisdictionID{ID: id},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}

	return toJurisdictionResponse(jurisdiction, count), nil
}

func (s *jurisdictionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdiction, err := uow.JurisdictionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if jurisdiction == nil {
		return apperr.ErrJurisdictionNotFound
	}

	if err := uow.JurisdictionRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.catalogCache.Invalidate(id)
	return nil
}

func (s *jurisdictionService) ListRequirements(ctx context.Context, jurisdictionId uuid.UUID) ([]*dto.RequirementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jurisdiction, err := uow.JurisdictionRepository().FindOne(ctx, specification.ByID{ID: jurisdictionId})
	if err != nil {
		return nil, err
	}
	if jurisdiction == nil {
		return nil, apperr.ErrJurisdictionNotFound
	}

	requirements, ok := s.catalogCache.Get(jurisdictionId)
	if !ok {
		requirements, err = uow.RequirementRepository().FindAll(ctx,
			specification.ByJurisdictionID{ID: jurisdictionId},
			specification.ActiveOnly{},
			specification.OrderBy{Field: "requirement_key"},
		)
		if err != nil {
			return nil, err
		}
		s.catalogCache.Save(jurisdictionId, requirements)
	}

	response := make([]*dto.RequirementResponse, 0, len(requirements))
	for _, r := range requirements {
		response = append(response, toRequirementResponse(r))
	}

	return response, nil
}

// ShowRequirement resolves one active catalog entry. A soft-deleted or
// unknown requirement reads as not found.
func (s *jurisdictionService) ShowRequirement(ctx context.Context, jurisdictionId, requirementId uuid.UUID) (*dto.RequirementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requirement, err := uow.RequirementRepository().FindOne(ctx,
		specification.ByID{ID: requirementId},
		specification.ByJurisdictionID{ID: jurisdictionId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if requirement == nil {
		return nil, apperr.ErrRequirementNotFound
	}

	return toRequirementResponse(requirement), nil
}

func toRequirementResponse(r *entity.Requirement) *dto.RequirementResponse {
	return &dto.RequirementResponse{
		Id:               r.Id,
		JurisdictionId:   r.JurisdictionId,
		RequirementKey:   r.RequirementKey,
		Title:            r.Title,
		Category:         r.Category,
		Description:      r.Description,
		Criticality:      r.Criticality,
		SectionReference: r.SectionReference,
		PageNumber:       r.PageNumber,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
	}
}

func toJurisdictionResponse(j *entity.Jurisdiction, requirementCount int64) *dto.JurisdictionResponse {
	return &dto.JurisdictionResponse{
		Id:             j.Id,
		Name:           j.Name,
		RegulationType: j.RegulationType,
		Description:    j.Description,
		Region:         j.Region,
		EffectiveDate:  j.EffectiveDate,
		RequirementCnt: requirementCount,
		CreatedAt:      j.CreatedAt,
	}
}

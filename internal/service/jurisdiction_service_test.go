package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/entity"
	"ai-compliance-be/internal/repository/contract"
	"ai-compliance-be/internal/repository/memory"
	"ai-compliance-be/internal/repository/specification"
	"ai-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type stubRequirementRepository struct {
	contract.RequirementRepository
	requirement *entity.Requirement
	findOneErr  error
	gotSpecs    []specification.Specification
}

func (r *stubRequirementRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Requirement, error) {
	r.gotSpecs = specs
	return r.requirement, r.findOneErr
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	requirements *stubRequirementRepository
}

func (u *stubUnitOfWork) RequirementRepository() contract.RequirementRepository {
	return u.requirements
}

type stubRepositoryFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubRepositoryFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func TestShowRequirementReturnsActiveEntry(t *testing.T) {
	jurisdictionId := uuid.New()
	requirementId := uuid.New()
	page := 12
	repo := &stubRequirementRepository{
		requirement: &entity.Requirement{
			Id:               requirementId,
			JurisdictionId:   jurisdictionId,
			RequirementKey:   "Article_9.2",
			Title:            "Risk management system",
			Category:         "Risk Management",
			Description:      "Establish and maintain a risk management system",
			Criticality:      "HIGH",
			SectionReference: "Article 9",
			PageNumber:       &page,
			IsActive:         true,
			CreatedAt:        time.Now(),
		},
	}
	svc := NewJurisdictionService(
		&stubRepositoryFactory{uow: &stubUnitOfWork{requirements: repo}},
		memory.NewCatalogCache(),
	)

	res, err := svc.ShowRequirement(context.Background(), jurisdictionId, requirementId)
	if err != nil {
		t.Fatalf("ShowRequirement() error = %v", err)
	}
	if res.Id != requirementId {
		t.Errorf("Id = %s, want %s", res.Id, requirementId)
	}
	if res.RequirementKey != "Article_9.2" {
		t.Errorf("RequirementKey = %q, want Article_9.2", res.RequirementKey)
	}
	if res.PageNumber == nil || *res.PageNumber != 12 {
		t.Errorf("PageNumber = %v, want 12", res.PageNumber)
	}

	// The lookup must scope to the jurisdiction and skip soft-deleted rows.
	var hasActiveOnly, hasJurisdiction bool
	for _, spec := range repo.gotSpecs {
		switch s := spec.(type) {
		case specification.ActiveOnly:
			hasActiveOnly = true
		case specification.ByJurisdictionID:
			hasJurisdiction = s.ID == jurisdictionId
		}
	}
	if !hasActiveOnly {
		t.Error("FindOne was not constrained to active requirements")
	}
	if !hasJurisdiction {
		t.Error("FindOne was not constrained to the jurisdiction")
	}
}

func TestShowRequirementNotFound(t *testing.T) {
	svc := NewJurisdictionService(
		&stubRepositoryFactory{uow: &stubUnitOfWork{requirements: &stubRequirementRepository{}}},
		memory.NewCatalogCache(),
	)

	_, err := svc.ShowRequirement(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, apperr.ErrRequirementNotFound) {
		t.Fatalf("ShowRequirement() error = %v, want ErrRequirementNotFound", err)
	}
}

func TestShowRequirementRepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")
	svc := NewJurisdictionService(
		&stubRepositoryFactory{uow: &stubUnitOfWork{requirements: &stubRequirementRepository{findOneErr: repoErr}}},
		memory.NewCatalogCache(),
	)

	_, err := svc.ShowRequirement(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, repoErr) {
		t.Fatalf("ShowRequirement() error = %v, want %v", err, repoErr)
	}
}

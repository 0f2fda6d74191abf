package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// CompanyService manages placement-drive records.
type CompanyService struct {
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
}

// NewCompanyService builds the service.
func NewCompanyService(companies repository.CompanyRepository, dispatcher events.Dispatcher) *CompanyService {
	return &CompanyService{companies: companies, dispatcher: dispatcher}
}

// CompanyInput carries create/update fields.
type CompanyInput struct {
	Name        string
	JobRole     string
	PackageLPA  float64
	Eligibility string
	Status      domain.DriveStatus
	VisitDate   *time.Time
}

func (in CompanyInput) validate() error {
	var fieldErrors []string
	if in.Name == "" {
		fieldErrors = append(fieldErrors, "name is required")
	}
	if in.JobRole == "" {
		fieldErrors = append(fieldErrors, "job role is required")
	}
	if in.PackageLPA < 0 {
		fieldErrors = append(fieldErrors, "package must not be negative")
	}
	if in.Status != "" && !in.Status.Valid() {
		fieldErrors = append(fieldErrors, "status must be one of UPCOMING, ONGOING, COMPLETED")
	}
	if len(fieldErrors) > 0 {
		return apperrors.NewValidationError(fieldErrors...)
	}
	return nil
}

// Create validates and stores a new company record.
func (s *CompanyService) Create(ctx context.Context, actor *domain.User, in CompanyInput) (*domain.Company, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.DriveStatusUpcoming
	}

	company := &domain.Company{
		Name:        in.Name,
		JobRole:     in.JobRole,
		PackageLPA:  in.PackageLPA,
		Eligibility: in.Eligibility,
		Status:      status,
		VisitDate:   in.VisitDate,
		CreatedBy:   actor.ID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, events.EventCompanyCreated, events.CompanyCreatedPayload{
		CompanyID: company.ID,
		Name:      company.Name,
		JobRole:   company.JobRole,
	})
	return company, nil
}

// Update validates and applies changes to an existing record.
func (s *CompanyService) Update(ctx context.Context, actor *domain.User, id string, in CompanyInput) (*domain.Company, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := company.Status
	company.Name = in.Name
	company.JobRole = in.JobRole
	company.PackageLPA = in.PackageLPA
	company.Eligibility = in.Eligibility
	if in.Status != "" {
		company.Status = in.Status
	}
	company.VisitDate = in.VisitDate

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	if company.Status != oldStatus {
		s.publish(ctx, actor, events.EventCompanyStatusChanged, events.CompanyStatusChangedPayload{
			CompanyID: company.ID,
			OldStatus: oldStatus,
			NewStatus: company.Status,
		})
	}
	return company, nil
}

// Delete removes a company record.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.companies.Delete(ctx, id)
}

// Get returns one company record.
func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// List returns all company records, newest first.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *CompanyService) publish(ctx context.Context, actor *domain.User, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

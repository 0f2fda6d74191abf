package dto

import (
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
)

// CompanyRequest payload for creating or updating a company record.
type CompanyRequest struct {
	Name        string     `json:"name"`
	JobRole     string     `json:"job_role"`
	PackageLPA  float64    `json:"package_lpa"`
	Eligibility string     `json:"eligibility"`
	Status      string     `json:"status,omitempty"`
	VisitDate   *time.Time `json:"visit_date,omitempty"`
}

// CompanyResponse is the public shape of a company record.
type CompanyResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	JobRole     string             `json:"job_role"`
	PackageLPA  float64            `json:"package_lpa"`
	Eligibility string             `json:"eligibility"`
	Status      domain.DriveStatus `json:"status"`
	VisitDate   *time.Time         `json:"visit_date,omitempty"`
	CreatedBy   string             `json:"created_by"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewCompanyResponse maps a domain company to its public shape.
func NewCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		JobRole:     company.JobRole,
		PackageLPA:  company.PackageLPA,
		Eligibility: company.Eligibility,
		Status:      company.Status,
		VisitDate:   company.VisitDate,
		CreatedBy:   company.CreatedBy,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}

// NewCompanyResponses maps a slice of domain companies.
func NewCompanyResponses(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, NewCompanyResponse(&companies[i]))
	}
	return out
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/service"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// CompaniesHandler exposes CRUD endpoints for placement-drive records.
type CompaniesHandler struct {
	companies *service.CompanyService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companyService *service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{companies: companyService}
}

// List handles GET /companies.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	companies, err := h.companies.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewCompanyResponses(companies),
	})
}

// Get handles GET /companies/:id.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	company, err := h.companies.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewCompanyResponse(company),
	})
}

// Create handles POST /companies.
func (h *CompaniesHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(errors.New("no principal on request"))
	}

	var req dto.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}

	company, err := h.companies.Create(c.Context(), actor, companyInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewCompanyResponse(company),
	})
}

// Update handles PUT /companies/:id.
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(errors.New("no principal on request"))
	}

	var req dto.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}

	company, err := h.companies.Update(c.Context(), actor, c.Params("id"), companyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewCompanyResponse(company),
	})
}

// Delete handles DELETE /companies/:id.
func (h *CompaniesHandler) Delete(c *fiber.Ctx) error {
	if err := h.companies.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "company deleted",
	})
}

func companyInput(req dto.CompanyRequest) service.CompanyInput {
	return service.CompanyInput{
		Name:        req.Name,
		JobRole:     req.JobRole,
		PackageLPA:  req.PackageLPA,
		Eligibility: req.Eligibility,
		Status:      domain.DriveStatus(req.Status),
		VisitDate:   req.VisitDate,
	}
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/placement-service/internal/domain"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// CompanyRepository defines persistence access for placement-drive records.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (name, job_role, package_lpa, eligibility, status, visit_date, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		company.Name,
		company.JobRole,
		company.PackageLPA,
		company.Eligibility,
		company.Status,
		company.VisitDate,
		company.CreatedBy,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	return translateWriteError(err)
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	if err := validateID(company.ID); err != nil {
		return err
	}

	const query = `
        UPDATE companies
        SET name=$1, job_role=$2, package_lpa=$3, eligibility=$4, status=$5, visit_date=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.JobRole,
		company.PackageLPA,
		company.Eligibility,
		company.Status,
		company.VisitDate,
		company.ID,
	)
	if err != nil {
		return translateWriteError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("company")
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("company")
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, name, job_role, package_lpa, eligibility, status, visit_date, created_by, created_at, updated_at
        FROM companies WHERE id=$1`

	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.JobRole,
		&company.PackageLPA,
		&company.Eligibility,
		&company.Status,
		&company.VisitDate,
		&company.CreatedBy,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company")
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	const query = `
        SELECT id, name, job_role, package_lpa, eligibility, status, visit_date, created_by, created_at, updated_at
        FROM companies ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.JobRole,
			&company.PackageLPA,
			&company.Eligibility,
			&company.Status,
			&company.VisitDate,
			&company.CreatedBy,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

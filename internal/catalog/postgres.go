package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is the pgx-backed Catalog used in production. Natural-key
// uniqueness is enforced by a partial unique index, so concurrent
// aggregation runs cannot insert the same listing twice even though the
// engine's check-then-create sequence is not itself atomic.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool, verifies it, and ensures the
// schema exists.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company_id UUID NOT NULL REFERENCES companies(id),
			company_name TEXT NOT NULL,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			remote TEXT NOT NULL,
			employment_type TEXT NOT NULL,
			salary_min INTEGER,
			salary_max INTEGER,
			salary_currency TEXT NOT NULL DEFAULT 'USD',
			experience_min INTEGER,
			experience_max INTEGER,
			status TEXT NOT NULL,
			source_url TEXT NOT NULL DEFAULT '',
			source_platform TEXT NOT NULL DEFAULT '',
			external_id TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			posted_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS jobs_natural_key
			ON jobs (source_platform, external_id)
			WHERE source_platform <> '' AND external_id <> ''`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

const jobColumns = `id, company_id, company_name, title, slug, description, location, remote,
	employment_type, salary_min, salary_max, salary_currency, experience_min, experience_max,
	status, source_url, source_platform, external_id, skills, posted_at, created_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.CompanyName, &j.Title, &j.Slug, &j.Description,
		&j.Location, &j.Remote, &j.EmploymentType, &j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency,
		&j.ExperienceMin, &j.ExperienceMax, &j.Status, &j.SourceURL, &j.SourcePlatform,
		&j.ExternalID, &j.Skills, &j.PostedAt, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// ListJobs returns jobs matching the filters, newest postedAt first.
func (p *Postgres) ListJobs(ctx context.Context, filters JobFilters) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Remote != "" {
		query += fmt.Sprintf(" AND remote = $%d", argNum)
		args = append(args, filters.Remote)
		argNum++
	}
	if filters.EmploymentType != "" {
		query += fmt.Sprintf(" AND employment_type = $%d", argNum)
		args = append(args, filters.EmploymentType)
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR company_name ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}
	query += " ORDER BY posted_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// FindJobByNaturalKey returns the job with the given provenance pair, or nil.
func (p *Postgres) FindJobByNaturalKey(ctx context.Context, platform, externalID string) (*Job, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE source_platform = $1 AND external_id = $2`,
		platform, externalID)
	j, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job by natural key: %w", err)
	}
	return j, nil
}

// CreateJob inserts a job. The ON CONFLICT clause over the natural-key
// index makes re-insertion of an already-seen listing a silent no-op.
func (p *Postgres) CreateJob(ctx context.Context, job *Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	skills := job.Skills
	if skills == nil {
		skills = []string{}
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		 ON CONFLICT (source_platform, external_id)
		 WHERE source_platform <> '' AND external_id <> ''
		 DO NOTHING`,
		job.ID, job.CompanyID, job.CompanyName, job.Title, job.Slug, job.Description,
		job.Location, job.Remote, job.EmploymentType, job.SalaryMin, job.SalaryMax,
		job.SalaryCurrency, job.ExperienceMin, job.ExperienceMax, job.Status,
		job.SourceURL, job.SourcePlatform, job.ExternalID, skills, job.PostedAt, job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindCompanyBySlug returns the company with the given slug, or nil.
func (p *Postgres) FindCompanyBySlug(ctx context.Context, slug string) (*Company, error) {
	var c Company
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, slug, description, website, logo_url, verified, created_at
		 FROM companies WHERE slug = $1`,
		slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Website, &c.LogoURL, &c.Verified, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &c, nil
}

// CreateCompany inserts a company. A slug collision updates nothing and
// keeps the existing record (first writer wins; the logo of an existing
// company is never overwritten).
func (p *Postgres) CreateCompany(ctx context.Context, company *Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO companies (id, name, slug, description, website, logo_url, verified, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (slug) DO NOTHING`,
		company.ID, company.Name, company.Slug, company.Description,
		company.Website, company.LogoURL, company.Verified, company.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

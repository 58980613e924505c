package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/purplesquirrel/jobengine/internal/types"
)

type seedJob struct {
	company     string
	companyDesc string
	website     string
	title       string
	description string
	location    string
	remote      types.RemoteMode
	salaryMin   int
	salaryMax   int
	expMin      int
	skills      []string
	postedDays  int
}

var seedJobs = []seedJob{
	{
		company: "Stripe", companyDesc: "Financial infrastructure for the internet", website: "https://stripe.com",
		title:       "Senior Frontend Engineer",
		description: "Build the future of financial infrastructure with React and TypeScript.",
		location:    "San Francisco, CA", remote: types.RemoteHybrid,
		salaryMin: 180000, salaryMax: 250000, expMin: 5,
		skills: []string{"React", "TypeScript", "GraphQL"}, postedDays: 2,
	},
	{
		company: "Figma", companyDesc: "Collaborative design tool", website: "https://figma.com",
		title:       "Staff Software Engineer - Platform",
		description: "Work on the core platform that powers collaborative design.",
		location:    "New York, NY", remote: types.RemoteFull,
		salaryMin: 200000, salaryMax: 280000, expMin: 7,
		skills: []string{"Rust", "TypeScript", "WebAssembly"}, postedDays: 1,
	},
	{
		company: "Vercel", companyDesc: "Frontend cloud platform", website: "https://vercel.com",
		title:       "Full Stack Developer",
		description: "Build the next generation of web development tools.",
		location:    "Remote", remote: types.RemoteFull,
		salaryMin: 150000, salaryMax: 200000, expMin: 3,
		skills: []string{"Next.js", "Node.js", "PostgreSQL"}, postedDays: 3,
	},
	{
		company: "Coinbase", companyDesc: "Cryptocurrency exchange", website: "https://coinbase.com",
		title:       "Blockchain Engineer",
		description: "Build secure, scalable blockchain infrastructure.",
		location:    "San Francisco, CA", remote: types.RemoteHybrid,
		salaryMin: 170000, salaryMax: 240000, expMin: 4,
		skills: []string{"Solidity", "Rust", "Go"}, postedDays: 5,
	},
	{
		company: "Datadog", companyDesc: "Cloud monitoring platform", website: "https://datadog.com",
		title:       "DevOps Engineer",
		description: "Scale cloud infrastructure for millions of customers.",
		location:    "Boston, MA", remote: types.RemoteOnsite,
		salaryMin: 140000, salaryMax: 190000, expMin: 3,
		skills: []string{"Kubernetes", "Terraform", "AWS"}, postedDays: 4,
	},
}

// SeedDemoData populates an empty catalog with a handful of manually-entered
// jobs so the matching endpoint has something to rank before the first
// aggregation run. Safe to call more than once: companies dedup by slug and
// seed jobs are skipped when their company already exists.
func SeedDemoData(ctx context.Context, c Catalog) error {
	for _, s := range seedJobs {
		slug := Slugify(s.company)
		company, err := c.FindCompanyBySlug(ctx, slug)
		if err != nil {
			return fmt.Errorf("find company %s: %w", slug, err)
		}
		if company != nil {
			continue
		}

		company = &Company{
			Name:        s.company,
			Slug:        slug,
			Description: s.companyDesc,
			Website:     s.website,
			LogoURL:     "https://logo.clearbit.com/" + slug + ".com",
			Verified:    true,
		}
		if err := c.CreateCompany(ctx, company); err != nil {
			return fmt.Errorf("create company %s: %w", s.company, err)
		}

		salaryMin, salaryMax, expMin := s.salaryMin, s.salaryMax, s.expMin
		job := &Job{
			CompanyID:      company.ID,
			CompanyName:    company.Name,
			Title:          s.title,
			Slug:           Slugify(s.title),
			Description:    s.description,
			Location:       s.location,
			Remote:         s.remote,
			EmploymentType: EmploymentFullTime,
			SalaryMin:      &salaryMin,
			SalaryMax:      &salaryMax,
			SalaryCurrency: DefaultCurrency,
			ExperienceMin:  &expMin,
			Status:         StatusActive,
			Skills:         s.skills,
			PostedAt:       time.Now().AddDate(0, 0, -s.postedDays),
		}
		if err := c.CreateJob(ctx, job); err != nil {
			return fmt.Errorf("create job %s: %w", s.title, err)
		}
	}
	return nil
}

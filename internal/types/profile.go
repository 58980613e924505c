package types

import "github.com/go-playground/validator/v10"

// CandidateProfile is the scoring input describing one candidate. It is not
// persisted by the engine; callers supply it per match request.
type CandidateProfile struct {
	Headline         string   `json:"headline" validate:"required"`
	Bio              string   `json:"bio,omitempty"`
	Skills           []string `json:"skills" validate:"required,min=1"`
	YearsExperience  int      `json:"years_experience" validate:"gte=0,lte=60"`
	DesiredRoles     []string `json:"desired_roles,omitempty"`
	DesiredLocations []string `json:"desired_locations,omitempty"`
	RemoteOnly       bool     `json:"remote_only"`
	SalaryMin        int      `json:"salary_min,omitempty" validate:"gte=0"`
	SalaryMax        int      `json:"salary_max,omitempty" validate:"gte=0"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

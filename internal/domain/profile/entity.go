package profile

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultCredits is assumed for a course recorded without credits.
const DefaultCredits = 6.0

type Course struct {
	Name        string  `json:"name" validate:"required"`
	Institution string  `json:"institution,omitempty"`
	Grade       float64 `json:"grade" validate:"gte=0"`
	Credits     float64 `json:"credits,omitempty" validate:"gte=0"`
	Semester    string  `json:"semester,omitempty"`
	Instructor  string  `json:"instructor,omitempty"`
}

// EffectiveCredits applies DefaultCredits to courses recorded without credits.
func (c Course) EffectiveCredits() float64 {
	if c.Credits <= 0 {
		return DefaultCredits
	}
	return c.Credits
}

type Project struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description,omitempty"`
	Technologies  []string  `json:"technologies,omitempty"`
	Outcome       string    `json:"outcome,omitempty"`
	RepositoryURL string    `json:"repository_url,omitempty" validate:"omitempty,url"`
	DemoURL       string    `json:"demo_url,omitempty" validate:"omitempty,url"`
	CreatedAt     time.Time `json:"created_at"`
}

type Preferences struct {
	WillingToRelocate  bool     `json:"willing_to_relocate"`
	RemoteWorkInterest bool     `json:"remote_work_interest"`
	InterestedCities   []string `json:"interested_cities,omitempty"`
}

type Candidate struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name,omitempty"`
	Institution string      `json:"institution,omitempty"`
	Degree      string      `json:"degree"`
	Location    string      `json:"location"`
	Courses     []Course    `json:"courses" validate:"dive"`
	Projects    []Project   `json:"projects" validate:"dive"`
	Preferences Preferences `json:"preferences"`
}

var validate = validator.New()

// Validate rejects structurally invalid records. Missing optional data is not an error.
func (c *Candidate) Validate() error {
	return validate.Struct(c)
}

// ValidateHistory checks loose course and project lists, as received by the progression endpoints.
func ValidateHistory(courses []Course, projects []Project) error {
	for i := range courses {
		if err := validate.Struct(&courses[i]); err != nil {
			return err
		}
	}
	for i := range projects {
		if err := validate.Struct(&projects[i]); err != nil {
			return err
		}
	}
	return nil
}

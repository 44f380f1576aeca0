package seeder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
)

// CandidateRecord is a candidate plus the eligibility columns batch targeting filters on.
type CandidateRecord struct {
	profile.Candidate
	CompletionPercentage int    `json:"completion_percentage" validate:"gte=0,lte=100"`
	VerificationStatus   string `json:"verification_status,omitempty"`
}

type Fixtures struct {
	Candidates  []CandidateRecord `json:"candidates" validate:"dive"`
	JobPostings []job.Posting     `json:"job_postings" validate:"dive"`
}

var validate = validator.New()

// LoadFixtures reads and validates a JSON fixture file.
func LoadFixtures(path string) (Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, err
	}
	var f Fixtures
	if err := json.Unmarshal(b, &f); err != nil {
		return Fixtures{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := validate.Struct(&f); err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Seeders returns the seeders for the fixture, job postings first.
func (f Fixtures) Seeders() []Seeder {
	return []Seeder{
		JobPostingSeeder{Postings: f.JobPostings},
		CandidateSeeder{Records: f.Candidates},
	}
}

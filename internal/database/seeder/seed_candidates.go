package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"career-match/internal/database"
)

const defaultVerificationStatus = "pending"

type CandidateSeeder struct {
	Records []CandidateRecord
}

func (CandidateSeeder) Name() string { return "candidates" }

// Run upserts each candidate and replaces its course and project history, keeping list order.
func (s CandidateSeeder) Run(ctx context.Context, db database.DB) error {
	if len(s.Records) == 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, r := range s.Records {
		c := r.Candidate
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		status := r.VerificationStatus
		if status == "" {
			status = defaultVerificationStatus
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO candidates (id, name, institution, degree, location, willing_to_relocate,
	remote_work_interest, interested_cities, completion_percentage, verification_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	institution = EXCLUDED.institution,
	degree = EXCLUDED.degree,
	location = EXCLUDED.location,
	willing_to_relocate = EXCLUDED.willing_to_relocate,
	remote_work_interest = EXCLUDED.remote_work_interest,
	interested_cities = EXCLUDED.interested_cities,
	completion_percentage = EXCLUDED.completion_percentage,
	verification_status = EXCLUDED.verification_status,
	updated_at = now()`,
			c.ID, c.Name, c.Institution, c.Degree, c.Location,
			c.Preferences.WillingToRelocate, c.Preferences.RemoteWorkInterest,
			textArray(c.Preferences.InterestedCities), r.CompletionPercentage, status,
		); err != nil {
			return fmt.Errorf("upsert candidate %s: %w", c.ID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE candidate_id = $1`, c.ID); err != nil {
			return err
		}
		for i, course := range c.Courses {
			if _, err := tx.Exec(ctx, `
INSERT INTO courses (candidate_id, name, institution, grade, credits, semester, instructor, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				c.ID, course.Name, course.Institution, course.Grade, course.Credits,
				course.Semester, course.Instructor, i,
			); err != nil {
				return fmt.Errorf("insert course %q: %w", course.Name, err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE candidate_id = $1`, c.ID); err != nil {
			return err
		}
		for i, p := range c.Projects {
			var createdAt *time.Time
			if !p.CreatedAt.IsZero() {
				t := p.CreatedAt
				createdAt = &t
			}
			if _, err := tx.Exec(ctx, `
INSERT INTO projects (candidate_id, title, description, technologies, outcome,
	repository_url, demo_url, created_at, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				c.ID, p.Title, p.Description, textArray(p.Technologies), p.Outcome,
				p.RepositoryURL, p.DemoURL, createdAt, i,
			); err != nil {
				return fmt.Errorf("insert project %q: %w", p.Title, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

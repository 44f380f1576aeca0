package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"career-match/internal/database"
	"career-match/internal/domain/job"
)

type JobPostingSeeder struct {
	Postings []job.Posting
}

func (JobPostingSeeder) Name() string { return "job_postings" }

// Run upserts every posting by ID. Postings without an ID get a fresh one.
func (s JobPostingSeeder) Run(ctx context.Context, db database.DB) error {
	if len(s.Postings) == 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range s.Postings {
		id := p.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		remote := p.RemoteOptions
		if remote == "" {
			remote = job.RemoteNone
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO job_postings (id, title, company, location, remote_options,
	fields_of_study, required_courses, project_experience, skills_required)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	company = EXCLUDED.company,
	location = EXCLUDED.location,
	remote_options = EXCLUDED.remote_options,
	fields_of_study = EXCLUDED.fields_of_study,
	required_courses = EXCLUDED.required_courses,
	project_experience = EXCLUDED.project_experience,
	skills_required = EXCLUDED.skills_required`,
			id, p.Title, p.Company, p.Location, remote,
			textArray(p.Academic.FieldsOfStudy),
			textArray(p.Academic.RequiredCourses),
			textArray(p.Academic.ProjectExperience),
			textArray(p.Academic.SkillsRequired),
		); err != nil {
			return fmt.Errorf("upsert posting %s: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// textArray keeps NOT NULL array columns from receiving NULL for a nil slice.
func textArray(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

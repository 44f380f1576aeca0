package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"career-match/internal/database"
	"career-match/internal/domain/job"
)

var ErrJobNotFound = errors.New("job not found")

type JobPostingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type PostgresJobPostingRepository struct {
	db database.DB
}

func NewPostgresJobPostingRepository(db database.DB) *PostgresJobPostingRepository {
	return &PostgresJobPostingRepository{db: db}
}

func (r *PostgresJobPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	if r == nil || r.db == nil {
		return job.Posting{}, database.ErrNoDatabase
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, title, company, location, remote_options,
		        fields_of_study, required_courses, project_experience, skills_required
		 FROM job_postings
		 WHERE id = $1`,
		id,
	)

	var p job.Posting
	err := row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Location, &p.RemoteOptions,
		&p.Academic.FieldsOfStudy, &p.Academic.RequiredCourses, &p.Academic.ProjectExperience, &p.Academic.SkillsRequired,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"career-match/internal/database"
	"career-match/internal/domain/profile"
)

var ErrCandidateNotFound = errors.New("candidate not found")

const (
	// MinProfileCompletion is the completion percentage a profile needs to enter batch targeting.
	MinProfileCompletion = 70
	VerificationRejected = "rejected"
)

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (profile.Candidate, error)
	FindEligible(ctx context.Context, minCompletion int) ([]profile.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, name, institution, degree, location,
	willing_to_relocate, remote_work_interest, interested_cities`

func scanCandidate(row database.Row) (profile.Candidate, error) {
	var c profile.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Institution, &c.Degree, &c.Location,
		&c.Preferences.WillingToRelocate, &c.Preferences.RemoteWorkInterest, &c.Preferences.InterestedCities,
	)
	return c, err
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (profile.Candidate, error) {
	if r == nil || r.db == nil {
		return profile.Candidate{}, database.ErrNoDatabase
	}

	c, err := scanCandidate(r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Candidate{}, ErrCandidateNotFound
		}
		return profile.Candidate{}, err
	}

	out := []profile.Candidate{c}
	if err := r.attachHistory(ctx, out); err != nil {
		return profile.Candidate{}, err
	}
	return out[0], nil
}

// FindEligible loads every candidate whose profile is complete enough and not rejected,
// ordered by id, with courses and projects attached.
func (r *PostgresCandidateRepository) FindEligible(ctx context.Context, minCompletion int) ([]profile.Candidate, error) {
	if r == nil || r.db == nil {
		return nil, database.ErrNoDatabase
	}
	if minCompletion <= 0 {
		minCompletion = MinProfileCompletion
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates
		 WHERE completion_percentage >= $1 AND verification_status <> $2
		 ORDER BY id ASC`,
		minCompletion, VerificationRejected,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachHistory(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachHistory fills courses and projects for every candidate with one query per table.
func (r *PostgresCandidateRepository) attachHistory(ctx context.Context, candidates []profile.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	index := make(map[uuid.UUID]int, len(candidates))
	for i := range candidates {
		ids = append(ids, candidates[i].ID)
		index[candidates[i].ID] = i
		candidates[i].Courses = make([]profile.Course, 0)
		candidates[i].Projects = make([]profile.Project, 0)
	}

	courseRows, err := r.db.Query(ctx,
		`SELECT candidate_id, name, institution, grade, credits, semester, instructor
		 FROM courses
		 WHERE candidate_id = ANY($1)
		 ORDER BY candidate_id ASC, position ASC, id ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer courseRows.Close()

	for courseRows.Next() {
		var owner uuid.UUID
		var c profile.Course
		if err := courseRows.Scan(&owner, &c.Name, &c.Institution, &c.Grade, &c.Credits, &c.Semester, &c.Instructor); err != nil {
			return err
		}
		if i, ok := index[owner]; ok {
			candidates[i].Courses = append(candidates[i].Courses, c)
		}
	}
	if err := courseRows.Err(); err != nil {
		return err
	}

	projectRows, err := r.db.Query(ctx,
		`SELECT candidate_id, title, description, technologies, outcome, repository_url, demo_url, created_at
		 FROM projects
		 WHERE candidate_id = ANY($1)
		 ORDER BY candidate_id ASC, position ASC, id ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer projectRows.Close()

	for projectRows.Next() {
		var owner uuid.UUID
		var p profile.Project
		var createdAt *time.Time
		if err := projectRows.Scan(&owner, &p.Title, &p.Description, &p.Technologies, &p.Outcome, &p.RepositoryURL, &p.DemoURL, &createdAt); err != nil {
			return err
		}
		if createdAt != nil {
			p.CreatedAt = *createdAt
		}
		if i, ok := index[owner]; ok {
			candidates[i].Projects = append(candidates[i].Projects, p)
		}
	}
	return projectRows.Err()
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"career-match/internal/database"
	"career-match/internal/domain/equivalence"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/progression"
	"career-match/internal/domain/taxonomy"
)

func newProgressionUsecase(cands *mockCandidateRepo, c Cache) *Progression {
	clock := func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	tracker := progression.NewTracker(equivalence.NewResolver(taxonomy.Default()), progression.WithClock(clock))
	return NewProgressionUsecase(tracker, cands, c, time.Minute, zap.NewNop())
}

func historyCandidate() profile.Candidate {
	c := strongCandidate("00000000-0000-0000-0000-000000000042")
	c.Courses[0].Semester = "2023-S1"
	c.Courses[1].Semester = "2024-S1"
	return c
}

func TestProgression_Analyze(t *testing.T) {
	uc := newProgressionUsecase(&mockCandidateRepo{}, nil)

	a, err := uc.Analyze(context.Background(), historyCandidate())
	require.NoError(t, err)
	assert.Len(t, a.YearlyProgression, 2)
	assert.Len(t, a.JobReadiness, 3)

	bad := historyCandidate()
	bad.Projects = append(bad.Projects, profile.Project{Title: "x", RepositoryURL: "not a url"})
	_, err = uc.Analyze(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProgression_AnalyzeCandidate_Caches(t *testing.T) {
	cand := historyCandidate()
	repo := &mockCandidateRepo{items: []profile.Candidate{cand}}
	c := newMemCache()
	uc := newProgressionUsecase(repo, c)

	first, err := uc.AnalyzeCandidate(context.Background(), cand.ID)
	require.NoError(t, err)
	assert.Equal(t, cand.ID, first.Candidate.ID)
	assert.Equal(t, 1, c.sets)

	second, err := uc.AnalyzeCandidate(context.Background(), cand.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second call served from cache")
	assert.Equal(t, first.JobReadiness, second.JobReadiness)
	assert.Equal(t, first.SkillEvolution, second.SkillEvolution)
}

func TestProgression_AnalyzeCandidate_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newProgressionUsecase(&mockCandidateRepo{}, nil).AnalyzeCandidate(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newProgressionUsecase(&mockCandidateRepo{}, nil).AnalyzeCandidate(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	_, err = newProgressionUsecase(&mockCandidateRepo{err: database.ErrNoDatabase}, nil).AnalyzeCandidate(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = newProgressionUsecase(&mockCandidateRepo{err: errors.New("boom")}, nil).AnalyzeCandidate(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrInternal)
}

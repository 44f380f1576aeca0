package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-match/internal/database"
)

var (
	aliceID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	bobID   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	jobID   = uuid.MustParse("00000000-0000-0000-0000-0000000000aa")
)

func candidateFixture() *fakeDB {
	created := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	return &fakeDB{tables: map[string][][]any{
		"candidates": {
			{aliceID, "Alice", "polimi", "Computer Science", "Milano", false, true, []string{"Torino"}},
			{bobID, "Bob", "unimi", "Data Science", "Pavia", true, false, []string{}},
		},
		"courses": {
			{aliceID, "Machine Learning", "polimi", 29.0, 6.0, "2023-S1", ""},
			{bobID, "Statistics", "unimi", 27.0, 9.0, "2022-S2", "Rossi"},
			{aliceID, "Databases", "polimi", 26.0, 0.0, "2022-S2", ""},
		},
		"projects": {
			{bobID, "Churn model", "Predicts churn", []string{"Python"}, "", "", "", &created},
			{aliceID, "Portfolio", "", []string{}, "", "https://github.com/a/p", "", nil},
		},
	}}
}

func TestCandidateRepository_FindEligible(t *testing.T) {
	db := candidateFixture()
	repo := NewPostgresCandidateRepository(db)

	got, err := repo.FindEligible(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, MinProfileCompletion, db.args[0][0])
	assert.Equal(t, VerificationRejected, db.args[0][1])
	assert.Contains(t, db.queries[1], "ANY($1)")
	assert.Equal(t, []uuid.UUID{aliceID, bobID}, db.args[1][0])

	alice := got[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.True(t, alice.Preferences.RemoteWorkInterest)
	require.Len(t, alice.Courses, 2)
	assert.Equal(t, "Machine Learning", alice.Courses[0].Name)
	assert.Equal(t, "Databases", alice.Courses[1].Name)
	require.Len(t, alice.Projects, 1)
	assert.True(t, alice.Projects[0].CreatedAt.IsZero())

	bob := got[1]
	require.Len(t, bob.Courses, 1)
	assert.Equal(t, "Rossi", bob.Courses[0].Instructor)
	require.Len(t, bob.Projects, 1)
	assert.Equal(t, 2023, bob.Projects[0].CreatedAt.Year())
}

func TestCandidateRepository_FindByID(t *testing.T) {
	db := candidateFixture()
	repo := NewPostgresCandidateRepository(db)

	got, err := repo.FindByID(context.Background(), aliceID)
	require.NoError(t, err)
	assert.Equal(t, aliceID, got.ID)
	assert.Len(t, got.Courses, 2)

	empty := NewPostgresCandidateRepository(&fakeDB{})
	_, err = empty.FindByID(context.Background(), aliceID)
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidateRepository_NoEligible(t *testing.T) {
	db := &fakeDB{}
	got, err := NewPostgresCandidateRepository(db).FindEligible(context.Background(), 80)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, db.queries, 1)
}

func TestJobPostingRepository_FindByID(t *testing.T) {
	db := &fakeDB{tables: map[string][][]any{
		"job_postings": {
			{jobID, "ML Engineer", "Acme", "Milano", "hybrid",
				[]string{"Computer Science"}, []string{"Machine Learning"}, []string{"machine learning"}, []string{"Python"}},
		},
	}}

	p, err := NewPostgresJobPostingRepository(db).FindByID(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, "ML Engineer", p.Title)
	assert.True(t, p.OffersRemote())
	assert.Equal(t, []string{"Machine Learning"}, p.Academic.RequiredCourses)

	_, err = NewPostgresJobPostingRepository(&fakeDB{}).FindByID(context.Background(), jobID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRepositories_WithoutDatabase(t *testing.T) {
	_, err := NewPostgresCandidateRepository(nil).FindEligible(context.Background(), 0)
	assert.ErrorIs(t, err, database.ErrNoDatabase)
	_, err = NewPostgresJobPostingRepository(nil).FindByID(context.Background(), jobID)
	assert.ErrorIs(t, err, database.ErrNoDatabase)
}

package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"career-match/internal/domain/equivalence"
	"career-match/internal/domain/taxonomy"
)

func newEquivalenceUsecase(c Cache) *Equivalence {
	resolver := equivalence.NewResolver(taxonomy.Default())
	return NewEquivalenceUsecase(resolver, c, EquivalenceConfig{Workers: 4}, zap.NewNop())
}

func TestEquivalence_FindEquivalents(t *testing.T) {
	c := newMemCache()
	uc := newEquivalenceUsecase(c)

	res, err := uc.FindEquivalents(context.Background(), CourseQuery{CourseName: "Machine Learning", Institution: "Generic"})
	require.NoError(t, err)
	require.True(t, res.Resolved())
	assert.NotEmpty(t, res.Equivalents)
	assert.Equal(t, 1, c.sets)

	again, err := uc.FindEquivalents(context.Background(), CourseQuery{CourseName: "  Machine Learning ", Institution: "Generic "})
	require.NoError(t, err)
	assert.Equal(t, res.TotalFound, again.TotalFound)
	assert.Equal(t, 1, c.sets, "trimmed query is served from cache")
}

func TestEquivalence_FindEquivalents_CaseDistinctQueriesCachedApart(t *testing.T) {
	ctx := context.Background()
	uc := newEquivalenceUsecase(newMemCache())
	fresh := newEquivalenceUsecase(nil)

	lower, err := uc.FindEquivalents(ctx, CourseQuery{CourseName: "Statistical Learning", Institution: "bocconi university"})
	require.NoError(t, err)
	exact, err := uc.FindEquivalents(ctx, CourseQuery{CourseName: "Statistical Learning", Institution: "Bocconi University"})
	require.NoError(t, err)

	want, err := fresh.FindEquivalents(ctx, CourseQuery{CourseName: "Statistical Learning", Institution: "Bocconi University"})
	require.NoError(t, err)
	assert.Equal(t, want, exact)
	for _, eq := range exact.Equivalents {
		assert.NotEqual(t, "Bocconi University", eq.Institution, "source institution is excluded")
	}
	assert.Greater(t, lower.TotalFound, exact.TotalFound)

	upper, err := uc.FindEquivalents(ctx, CourseQuery{CourseName: "Data Mining"})
	require.NoError(t, err)
	plain, err := uc.FindEquivalents(ctx, CourseQuery{CourseName: "data mining"})
	require.NoError(t, err)
	wantUpper, _ := fresh.FindEquivalents(ctx, CourseQuery{CourseName: "Data Mining"})
	wantPlain, _ := fresh.FindEquivalents(ctx, CourseQuery{CourseName: "data mining"})
	assert.Equal(t, wantUpper, upper)
	assert.Equal(t, wantPlain, plain)
}

func TestEquivalence_FindEquivalents_Unresolved(t *testing.T) {
	uc := newEquivalenceUsecase(nil)

	res, err := uc.FindEquivalents(context.Background(), CourseQuery{CourseName: "Quantum Origami"})
	require.NoError(t, err)
	assert.False(t, res.Resolved())
	assert.Equal(t, equivalence.ErrCourseNotFound, res.Error)
}

func TestEquivalence_FindEquivalents_InvalidInput(t *testing.T) {
	uc := newEquivalenceUsecase(nil)

	_, err := uc.FindEquivalents(context.Background(), CourseQuery{CourseName: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEquivalence_Batch_KeepsOrder(t *testing.T) {
	uc := newEquivalenceUsecase(newMemCache())
	qs := []CourseQuery{
		{CourseName: "Machine Learning"},
		{CourseName: "Quantum Origami"},
		{CourseName: "Database Systems"},
		{CourseName: "Machine Learning"},
	}

	out, err := uc.FindEquivalentsBatch(context.Background(), qs)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.True(t, out[0].Resolved())
	assert.False(t, out[1].Resolved())
	assert.True(t, out[2].Resolved())
	assert.Equal(t, out[0].OriginalCourse, out[3].OriginalCourse)
	assert.Equal(t, "Database Systems", out[2].OriginalCourse.Name)
}

func TestEquivalence_Batch_Invalid(t *testing.T) {
	uc := newEquivalenceUsecase(nil)

	_, err := uc.FindEquivalentsBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.FindEquivalentsBatch(context.Background(), []CourseQuery{{CourseName: "Machine Learning"}, {}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "courses[1]")

	many := make([]CourseQuery, MaxBatchCourses+1)
	for i := range many {
		many[i] = CourseQuery{CourseName: fmt.Sprintf("Course %d", i)}
	}
	_, err = uc.FindEquivalentsBatch(context.Background(), many)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEquivalence_CheckRequirementMatch(t *testing.T) {
	uc := newEquivalenceUsecase(nil)
	ctx := context.Background()

	m, err := uc.CheckRequirementMatch(ctx,
		equivalence.StudentCourse{Name: "Machine Learning", Grade: 28},
		equivalence.CourseRequirement{CourseName: "Machine Learning"},
		0,
	)
	require.NoError(t, err)
	assert.True(t, m.Match)
	assert.Equal(t, "Full match", m.Reason)

	_, err = uc.CheckRequirementMatch(ctx,
		equivalence.StudentCourse{Name: "Machine Learning"},
		equivalence.CourseRequirement{CourseName: "Machine Learning"},
		1.5,
	)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CheckRequirementMatch(ctx, equivalence.StudentCourse{}, equivalence.CourseRequirement{CourseName: "x"}, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEquivalence_Similarity(t *testing.T) {
	uc := newEquivalenceUsecase(nil)

	got, err := uc.Similarity(context.Background(), "machine_learning", "data_science")
	require.NoError(t, err)
	assert.Equal(t, 0.85, got.Similarity)
	assert.Equal(t, []string{"python", "statistics", "data_preprocessing"}, got.SharedSkills)

	_, err = uc.Similarity(context.Background(), "machine_learning", "alchemy")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEquivalence_Roles(t *testing.T) {
	uc := newEquivalenceUsecase(nil)
	assert.Len(t, uc.Roles(context.Background()), 3)
}

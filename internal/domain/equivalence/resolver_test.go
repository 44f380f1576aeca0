package equivalence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-match/internal/domain/taxonomy"
)

func newTestResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	return NewResolver(taxonomy.Default(), opts...)
}

func TestMapCourse(t *testing.T) {
	r := newTestResolver(t)

	cases := []struct {
		name        string
		course      string
		institution string
		want        taxonomy.SkillFamilyID
		ok          bool
	}{
		{"institution table", "Apprendimento Automatico", "Politecnico Milano", taxonomy.MachineLearning, true},
		{"generic fallback", "Relational Databases", "Politecnico Milano", taxonomy.DatabaseSystems, true},
		{"unknown institution uses generic", "Algorithm Design", "MIT", taxonomy.Algorithms, true},
		{"fuzzy single keyword", "Intro to Neural Computation", "", taxonomy.MachineLearning, true},
		{"earlier keyword set wins", "Advanced Data Structure Theory", "", taxonomy.DatabaseSystems, true},
		{"fuzzy hyphenated keyword", "Object-Oriented Design", "", taxonomy.SoftwareEngineering, true},
		{"hyphenated course word", "Client-Side Scripting", "", taxonomy.WebDevelopment, true},
		{"keyword must be a whole token", "Mailing Lists", "", "", false},
		{"unresolvable", "Medieval Poetry", "", "", false},
		{"blank", "   ", "Generic", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.MapCourse(tc.course, tc.institution)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSimilarity_SelfIsOne(t *testing.T) {
	r := newTestResolver(t)
	for _, id := range r.Taxonomy().FamilyIDs() {
		assert.Equal(t, 1.0, r.Similarity(id, id), "family %s", id)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	r := newTestResolver(t)
	ids := r.Taxonomy().FamilyIDs()
	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, r.Similarity(a, b), r.Similarity(b, a), "%s/%s", a, b)
		}
	}
}

func TestSimilarity_EdgesAndJaccard(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, 0.85, r.Similarity(taxonomy.MachineLearning, taxonomy.DataScience))
	assert.Equal(t, 0.85, r.Similarity(taxonomy.DataScience, taxonomy.MachineLearning))
	assert.Equal(t, 0.65, r.Similarity(taxonomy.SoftwareEngineering, taxonomy.WebDevelopment))

	// ML and algorithms share only "optimization": 1 of 16 distinct skills.
	assert.InDelta(t, 1.0/16.0, r.Similarity(taxonomy.MachineLearning, taxonomy.Algorithms), 1e-9)

	assert.Equal(t, 0.0, r.Similarity(taxonomy.MachineLearning, "ghost"))
	assert.Equal(t, 0.0, r.Similarity("ghost", "ghost"))
}

func TestSharedSkills(t *testing.T) {
	r := newTestResolver(t)

	shared := r.SharedSkills(taxonomy.MachineLearning, taxonomy.DataScience)
	assert.Equal(t, []string{"python", "statistics", "data_preprocessing"}, shared)
	assert.Empty(t, r.SharedSkills(taxonomy.MachineLearning, "ghost"))
}

func TestFindEquivalents_MachineLearning(t *testing.T) {
	r := newTestResolver(t)

	res := r.FindEquivalents("Machine Learning", "Generic")
	require.True(t, res.Resolved())
	require.NotNil(t, res.OriginalCourse)
	assert.Equal(t, taxonomy.MachineLearning, res.OriginalCourse.SkillFamily)
	assert.Equal(t, len(res.Equivalents), res.TotalFound)
	require.NotEmpty(t, res.Equivalents)

	for i, eq := range res.Equivalents {
		assert.NotEqual(t, "Generic", eq.Institution)
		assert.GreaterOrEqual(t, eq.Similarity, DefaultEquivalenceThreshold)
		if i > 0 {
			assert.LessOrEqual(t, eq.Similarity, res.Equivalents[i-1].Similarity)
		}
	}

	var sawDataScience bool
	for _, eq := range res.Equivalents {
		if eq.CourseName == "Data Science for Business" {
			sawDataScience = true
			assert.Equal(t, 0.85, eq.Similarity)
			assert.Contains(t, eq.SharedSkills, "python")
		}
	}
	assert.True(t, sawDataScience, "cross-family edge above threshold is listed")
}

func TestFindEquivalents_ThresholdOption(t *testing.T) {
	r := newTestResolver(t, WithEquivalenceThreshold(0.9))

	res := r.FindEquivalents("Machine Learning", "Generic")
	for _, eq := range res.Equivalents {
		assert.Equal(t, taxonomy.MachineLearning, eq.SkillFamily)
	}
}

func TestFindEquivalents_Unresolved(t *testing.T) {
	r := newTestResolver(t)

	res := r.FindEquivalents("Quantum Origami", "Generic")
	assert.False(t, res.Resolved())
	assert.Equal(t, ErrCourseNotFound, res.Error)
	assert.Empty(t, res.Equivalents)
	assert.Zero(t, res.TotalFound)
	assert.Empty(t, res.Suggestions)

	res = r.FindEquivalents("Poetry of Networks", "Generic")
	assert.Equal(t, ErrCourseNotFound, res.Error)
	require.NotEmpty(t, res.Suggestions)
	assert.LessOrEqual(t, len(res.Suggestions), MaxSuggestions)
	assert.Equal(t, "Neural Networks", res.Suggestions[0].CourseName)
	assert.Equal(t, "Similar keywords: networks", res.Suggestions[0].Reason)
}

func TestSuggestSimilarCourses_Capped(t *testing.T) {
	r := newTestResolver(t)

	got := r.SuggestSimilarCourses("data")
	assert.Len(t, got, MaxSuggestions)
	assert.Equal(t, "Data Mining", got[0].CourseName)
	assert.Equal(t, "Bocconi University", got[0].Institution)
	assert.Equal(t, "Database Management", got[1].CourseName)

	assert.Empty(t, r.SuggestSimilarCourses("a di e"))
}

func TestCheckRequirementMatch(t *testing.T) {
	r := newTestResolver(t)

	t.Run("full match", func(t *testing.T) {
		m := r.CheckRequirementMatch(
			StudentCourse{Name: "Statistical Learning", Institution: "Bocconi University", Grade: 28},
			CourseRequirement{CourseName: "Machine Learning"},
			0,
		)
		assert.True(t, m.Match)
		assert.True(t, m.GradeMatch)
		assert.Equal(t, 1.0, m.Similarity)
		assert.Equal(t, "Full match", m.Reason)
	})

	t.Run("grade below default minimum", func(t *testing.T) {
		m := r.CheckRequirementMatch(
			StudentCourse{Name: "Machine Learning", Grade: 17},
			CourseRequirement{CourseName: "Deep Learning"},
			0,
		)
		assert.False(t, m.Match)
		assert.False(t, m.GradeMatch)
		assert.Equal(t, "Grade too low (17/18)", m.Reason)
	})

	t.Run("explicit minimum grade", func(t *testing.T) {
		m := r.CheckRequirementMatch(
			StudentCourse{Name: "Machine Learning", Grade: 24},
			CourseRequirement{CourseName: "Machine Learning", MinGrade: 27},
			0,
		)
		assert.False(t, m.Match)
		assert.Equal(t, "Grade too low (24/27)", m.Reason)
	})

	t.Run("similarity below default", func(t *testing.T) {
		m := r.CheckRequirementMatch(
			StudentCourse{Name: "Web Development", Grade: 30},
			CourseRequirement{CourseName: "Software Engineering"},
			0,
		)
		assert.False(t, m.Match)
		assert.True(t, m.GradeMatch)
		assert.Equal(t, 0.65, m.Similarity)
		assert.Equal(t, "Skill similarity too low (65%)", m.Reason)
	})

	t.Run("custom similarity", func(t *testing.T) {
		m := r.CheckRequirementMatch(
			StudentCourse{Name: "Web Development", Grade: 30},
			CourseRequirement{CourseName: "Software Engineering"},
			0.6,
		)
		assert.True(t, m.Match)
	})

	t.Run("unresolvable course", func(t *testing.T) {
		m := r.CheckRequirementMatch(
			StudentCourse{Name: "Medieval Poetry", Grade: 30},
			CourseRequirement{CourseName: "Machine Learning"},
			0,
		)
		assert.False(t, m.Match)
		assert.Equal(t, "Course not found in skill database", m.Reason)
	})
}

func TestSkillsForCourse(t *testing.T) {
	r := newTestResolver(t)

	skills := r.SkillsForCourse("Database Management", "Bocconi University")
	require.NotEmpty(t, skills)
	assert.Equal(t, "database_systems", skills[0])
	assert.Contains(t, skills, "sql")
	assert.Contains(t, skills, "security")
	assert.Nil(t, r.SkillsForCourse("Medieval Poetry", ""))
}

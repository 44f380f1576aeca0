package targeting

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/taxonomy"
)

func newTestEngine() *Engine {
	return NewEngine(taxonomy.Default(), Thresholds{})
}

func mlPosting() job.Posting {
	return job.Posting{
		ID:            uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
		Title:         "Junior ML Engineer",
		Location:      "Milano",
		RemoteOptions: "hybrid",
		Academic: job.AcademicRequirements{
			FieldsOfStudy:     []string{"Computer Science", "Data Science"},
			RequiredCourses:   []string{"Machine Learning", "Database"},
			ProjectExperience: []string{"machine learning"},
			SkillsRequired:    []string{"Python", "SQL"},
		},
	}
}

func strongCandidate() profile.Candidate {
	return profile.Candidate{
		ID:          uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:        "Giulia Rossi",
		Institution: "Politecnico Milano",
		Degree:      "BSc Computer Science",
		Location:    "Milano",
		Courses: []profile.Course{
			{Name: "Machine Learning", Grade: 28},
			{Name: "Database Systems", Grade: 27},
		},
		Projects: []profile.Project{
			{
				Title:         "Churn predictor",
				Description:   "A machine learning pipeline for telecom data",
				Technologies:  []string{"python", "SQL"},
				RepositoryURL: "https://github.com/example/churn",
			},
			{
				Title:        "Portfolio site",
				Technologies: []string{"React"},
				Outcome:      "Deployed and used by 200 visitors a month",
			},
		},
		Preferences: profile.Preferences{RemoteWorkInterest: true},
	}
}

func TestDetermineVisibility_StrongCandidate(t *testing.T) {
	e := newTestEngine()

	v := e.DetermineVisibility(mlPosting(), strongCandidate())
	assert.True(t, v.Visible)
	assert.Equal(t, 100.0, v.Scores.Academic)
	assert.Equal(t, 100.0, v.Scores.Geographic)
	assert.Equal(t, 100.0, v.Scores.Experience)
	assert.Equal(t, 100.0, v.Scores.Overall)
	assert.Empty(t, v.Improvements)

	assert.Contains(t, v.Reasoning.Academic, "✓ Degree matches required field: Computer Science")
	assert.Contains(t, v.Reasoning.Academic, "✓ Completed course: Database Systems (27/30)")
	assert.Contains(t, v.Reasoning.Academic, "✓ Relevant project: Churn predictor")
	assert.Contains(t, v.Reasoning.Geographic, "✓ Excellent location match: 0km from job")
	assert.Contains(t, v.Reasoning.Geographic, "✓ Remote options available (hybrid)")
	assert.Contains(t, v.Reasoning.Experience, "✓ Has required skill: Python")
	assert.Contains(t, v.Reasoning.Experience, "✓ Multiple quality projects with demos/outcomes")
}

func TestDetermineVisibility_SingleFailingGateBlocks(t *testing.T) {
	e := newTestEngine()

	v := e.decide(
		dimension{score: 69, reasoning: []string{"academic"}},
		dimension{score: 100, reasoning: []string{"geographic"}},
		dimension{score: 100, reasoning: []string{"experience"}},
	)
	assert.False(t, v.Visible)
	assert.InDelta(t, 0.5*69+30+20, v.Scores.Overall, 1e-9)
	assert.Equal(t, []string{
		"Consider taking additional courses in the required field",
		"Build projects that demonstrate skills from your coursework",
	}, v.Improvements)

	v = e.decide(
		dimension{score: 70},
		dimension{score: 60},
		dimension{score: 50},
	)
	assert.True(t, v.Visible, "scores exactly at the gates pass")
}

func TestDetermineVisibility_Geography(t *testing.T) {
	e := newTestEngine()
	posting := mlPosting()

	cases := []struct {
		name     string
		location string
		prefs    profile.Preferences
		want     float64
	}{
		{"commute band", "Monza", profile.Preferences{}, 100},
		{"good band", "Pavia", profile.Preferences{}, 80},
		{"unknown pair uses default distance", "Unknown Town", profile.Preferences{WillingToRelocate: true}, 50},
		{"long distance without interest", "Roma", profile.Preferences{}, 0},
		{"long distance with interested city", "Roma", profile.Preferences{InterestedCities: []string{"milano"}}, 50},
		{"long distance with relocation and remote", "Roma", profile.Preferences{WillingToRelocate: true, RemoteWorkInterest: true}, 65},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := strongCandidate()
			c.Location = tc.location
			c.Preferences = tc.prefs
			v := e.DetermineVisibility(posting, c)
			assert.Equal(t, tc.want, v.Scores.Geographic)
			assert.NotEmpty(t, v.Reasoning.Geographic)
			assert.Equal(t, tc.want >= DefaultGeographicGate, v.Visible)
		})
	}
}

func TestDetermineVisibility_ZeroRequirementsUseDefaults(t *testing.T) {
	e := newTestEngine()
	posting := job.Posting{Title: "Intern", Location: "Milano"}
	candidate := profile.Candidate{Degree: "BA Philosophy", Location: "Milano"}

	v := e.DetermineVisibility(posting, candidate)
	assert.True(t, v.Visible)
	assert.Equal(t, 100.0, v.Scores.Academic)
	assert.Equal(t, 80.0, v.Scores.Experience)
	assert.Contains(t, v.Reasoning.Academic, "✓ No course requirement")
	assert.Contains(t, v.Reasoning.Academic, "✓ No project experience requirement")
	assert.Contains(t, v.Reasoning.Experience, "✓ No skill requirement")
}

func TestDetermineVisibility_WeakCandidate(t *testing.T) {
	e := newTestEngine()
	candidate := profile.Candidate{Degree: "BA History", Location: "Napoli"}

	v := e.DetermineVisibility(mlPosting(), candidate)
	assert.False(t, v.Visible)
	assert.Zero(t, v.Scores.Academic)
	assert.Zero(t, v.Scores.Experience)
	assert.Len(t, v.Improvements, 6)
	assert.Contains(t, v.Reasoning.Academic, "⚠ Academic match too low (0/100) - need stronger field/course/project alignment")
	assert.Contains(t, v.Reasoning.Experience, "⚠ Limited relevant experience - consider building projects with required skills")
	assert.Contains(t, v.Improvements, "Build projects using the required technologies")
}

func TestDetermineVisibility_ThirdsSumExactly(t *testing.T) {
	e := newTestEngine()
	posting := mlPosting()
	posting.Academic.RequiredCourses = []string{"Machine Learning", "Database", "Algorithms"}
	c := strongCandidate()
	c.Courses = append(c.Courses, profile.Course{Name: "Advanced Algorithms", Grade: 25})

	v := e.DetermineVisibility(posting, c)
	assert.Equal(t, 100.0, v.Scores.Academic)
}

func TestDetermineVisibility_ScoresStayInRange(t *testing.T) {
	e := newTestEngine()
	locations := []string{"Milano", "Roma", "Torino", "Nowhere", ""}
	prefs := []profile.Preferences{
		{},
		{WillingToRelocate: true, RemoteWorkInterest: true},
		{InterestedCities: []string{"Milano"}},
	}

	for _, loc := range locations {
		for _, p := range prefs {
			c := strongCandidate()
			c.Location = loc
			c.Preferences = p
			v := e.DetermineVisibility(mlPosting(), c)
			for _, s := range []float64{v.Scores.Academic, v.Scores.Geographic, v.Scores.Experience, v.Scores.Overall} {
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 100.0)
			}
			assert.NotEmpty(t, v.Reasoning.Geographic)
		}
	}
}

func TestDetermineVisibility_CustomThresholds(t *testing.T) {
	e := NewEngine(taxonomy.Default(), Thresholds{Academic: 90, Geographic: 90, Experience: 90})
	c := strongCandidate()
	c.Location = "Pavia"

	v := e.DetermineVisibility(mlPosting(), c)
	assert.Equal(t, 95.0, v.Scores.Geographic, "80 band plus remote bonus")
	assert.True(t, v.Visible)

	c.Preferences.RemoteWorkInterest = false
	v = e.DetermineVisibility(mlPosting(), c)
	assert.False(t, v.Visible)
}

func TestDetermineVisibility_Deterministic(t *testing.T) {
	e := newTestEngine()

	a := e.DetermineVisibility(mlPosting(), strongCandidate())
	b := e.DetermineVisibility(mlPosting(), strongCandidate())
	assert.Equal(t, a, b)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

// Package progression infers how a candidate's skills evolved across their course and project
// history, how ready they are for each cataloged job role, and where their trajectory points.
package progression

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-match/internal/domain/equivalence"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/taxonomy"
)

type Option func(*Tracker)

// WithClock sets the clock used to date courses without a year in their term label and projects
// without a creation time.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

type Tracker struct {
	tax      *taxonomy.Taxonomy
	resolver *equivalence.Resolver
	now      func() time.Time
}

func NewTracker(resolver *equivalence.Resolver, opts ...Option) *Tracker {
	t := &Tracker{
		tax:      resolver.Taxonomy(),
		resolver: resolver,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

type CandidateSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name,omitempty"`
	Institution string    `json:"institution,omitempty"`
	Degree      string    `json:"degree,omitempty"`
	CurrentGPA  float64   `json:"current_gpa"`
}

type Analysis struct {
	Candidate         CandidateSummary         `json:"candidate"`
	YearlyProgression []Year                   `json:"yearly_progression"`
	SkillEvolution    SkillEvolution           `json:"skill_evolution"`
	JobReadiness      map[string]RoleReadiness `json:"job_readiness"`
	CareerTrajectory  Trajectory               `json:"career_trajectory"`
	Recommendations   []Recommendation         `json:"recommendations"`
}

// Analyze runs every progression step over a candidate's full history. Courses recorded without
// an institution are resolved against the candidate's own institution.
func (t *Tracker) Analyze(candidate profile.Candidate) Analysis {
	courses := make([]profile.Course, len(candidate.Courses))
	copy(courses, candidate.Courses)
	for i := range courses {
		if strings.TrimSpace(courses[i].Institution) == "" {
			courses[i].Institution = candidate.Institution
		}
	}
	projects := candidate.Projects

	years := t.BuildYearlyProgression(courses, projects)
	evolution := t.TrackSkillEvolution(courses, projects)
	readiness := t.AssessJobReadiness(courses, projects, evolution)

	return Analysis{
		Candidate: CandidateSummary{
			ID:          candidate.ID,
			Name:        candidate.Name,
			Institution: candidate.Institution,
			Degree:      candidate.Degree,
			CurrentGPA:  overallGPA(courses),
		},
		YearlyProgression: years,
		SkillEvolution:    evolution,
		JobReadiness:      readiness,
		CareerTrajectory:  t.PredictCareerTrajectory(years, evolution),
		Recommendations:   t.GenerateRecommendations(evolution, readiness),
	}
}

var yearPattern = regexp.MustCompile(`\d{4}`)

func (t *Tracker) courseYear(c profile.Course) int {
	if m := yearPattern.FindString(c.Semester); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			return y
		}
	}
	return t.now().Year()
}

func (t *Tracker) projectYear(p profile.Project) int {
	if p.CreatedAt.IsZero() {
		return t.now().Year()
	}
	return p.CreatedAt.Year()
}

func (t *Tracker) courseSkills(c profile.Course) []string {
	return t.resolver.SkillsForCourse(c.Name, c.Institution)
}

// projectSkills maps each technology to a skill, keeping the first occurrence of each.
func (t *Tracker) projectSkills(p profile.Project) []string {
	out := make([]string, 0, len(p.Technologies))
	seen := make(map[string]struct{}, len(p.Technologies))
	for _, tech := range p.Technologies {
		s := t.tax.SkillForTechnology(tech)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func overallGPA(courses []profile.Course) float64 {
	var weighted, credits float64
	for _, c := range courses {
		weighted += c.Grade * c.EffectiveCredits()
		credits += c.EffectiveCredits()
	}
	if credits == 0 {
		return 0
	}
	return round2(weighted / credits)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package targeting

import (
	"fmt"
	"math"
	"strings"

	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/taxonomy"
)

const (
	DefaultAcademicGate   = 70.0
	DefaultGeographicGate = 60.0
	DefaultExperienceGate = 50.0

	fieldOfStudyPoints   = 40.0
	coursePoints         = 30.0
	projectPoints        = 30.0
	skillPoints          = 80.0
	relocationBonus      = 20.0
	relocationPenalty    = 30.0
	remoteBonus          = 15.0
	relocationDistanceKm = 50

	academicWeight   = 0.5
	geographicWeight = 0.3
	experienceWeight = 0.2
)

// Thresholds are the per-dimension gates a candidate must all reach for a posting to be visible.
type Thresholds struct {
	Academic   float64 `json:"academic"`
	Geographic float64 `json:"geographic"`
	Experience float64 `json:"experience"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Academic:   DefaultAcademicGate,
		Geographic: DefaultGeographicGate,
		Experience: DefaultExperienceGate,
	}
}

type Scores struct {
	Academic   float64 `json:"academic"`
	Geographic float64 `json:"geographic"`
	Experience float64 `json:"experience"`
	Overall    float64 `json:"overall"`
}

type Reasoning struct {
	Academic   []string `json:"academic"`
	Geographic []string `json:"geographic"`
	Experience []string `json:"experience"`
}

type Visibility struct {
	Visible      bool      `json:"visible"`
	Scores       Scores    `json:"scores"`
	Reasoning    Reasoning `json:"reasoning"`
	Improvements []string  `json:"improvements"`
}

type dimension struct {
	score     float64
	reasoning []string
}

type Engine struct {
	tax        *taxonomy.Taxonomy
	thresholds Thresholds
}

func NewEngine(tax *taxonomy.Taxonomy, thresholds Thresholds) *Engine {
	def := DefaultThresholds()
	if thresholds.Academic <= 0 {
		thresholds.Academic = def.Academic
	}
	if thresholds.Geographic <= 0 {
		thresholds.Geographic = def.Geographic
	}
	if thresholds.Experience <= 0 {
		thresholds.Experience = def.Experience
	}
	return &Engine{tax: tax, thresholds: thresholds}
}

func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// DetermineVisibility scores one posting against one candidate. The posting is visible only if
// every dimension reaches its gate; the overall score never affects visibility.
func (e *Engine) DetermineVisibility(posting job.Posting, candidate profile.Candidate) Visibility {
	academic := e.academicRelevance(posting, candidate)
	geographic := e.geographicRelevance(posting, candidate)
	experience := e.experienceRelevance(posting, candidate)

	return e.decide(academic, geographic, experience)
}

func (e *Engine) decide(academic, geographic, experience dimension) Visibility {
	visible := academic.score >= e.thresholds.Academic &&
		geographic.score >= e.thresholds.Geographic &&
		experience.score >= e.thresholds.Experience

	return Visibility{
		Visible: visible,
		Scores: Scores{
			Academic:   academic.score,
			Geographic: geographic.score,
			Experience: experience.score,
			Overall:    round2(academicWeight*academic.score + geographicWeight*geographic.score + experienceWeight*experience.score),
		},
		Reasoning: Reasoning{
			Academic:   academic.reasoning,
			Geographic: geographic.reasoning,
			Experience: experience.reasoning,
		},
		Improvements: e.improvements(academic.score, geographic.score, experience.score),
	}
}

func (e *Engine) academicRelevance(posting job.Posting, candidate profile.Candidate) dimension {
	var score float64
	reasoning := make([]string, 0)
	req := posting.Academic

	fields := nonEmpty(req.FieldsOfStudy)
	if len(fields) == 0 {
		score += fieldOfStudyPoints
		reasoning = append(reasoning, "✓ No field-of-study requirement")
	} else {
		degree := strings.ToLower(candidate.Degree)
		for _, field := range fields {
			if strings.Contains(degree, strings.ToLower(field)) {
				score += fieldOfStudyPoints
				reasoning = append(reasoning, "✓ Degree matches required field: "+field)
				break
			}
		}
	}

	courses := nonEmpty(req.RequiredCourses)
	if len(courses) == 0 {
		score += coursePoints
		reasoning = append(reasoning, "✓ No course requirement")
	} else {
		per := coursePoints / float64(len(courses))
		for _, required := range courses {
			if c, ok := findCourse(candidate.Courses, required); ok {
				score += per
				reasoning = append(reasoning, fmt.Sprintf("✓ Completed course: %s (%g/30)", c.Name, c.Grade))
			}
		}
	}

	projectTypes := nonEmpty(req.ProjectExperience)
	if len(projectTypes) == 0 {
		score += projectPoints
		reasoning = append(reasoning, "✓ No project experience requirement")
	} else {
		per := projectPoints / float64(len(projectTypes))
		for _, pt := range projectTypes {
			if p, ok := findProject(candidate.Projects, pt); ok {
				score += per
				reasoning = append(reasoning, "✓ Relevant project: "+p.Title)
			}
		}
	}

	score = clamp(score)
	if score < e.thresholds.Academic {
		reasoning = append(reasoning, fmt.Sprintf("⚠ Academic match too low (%d/100) - need stronger field/course/project alignment", int(math.Round(score))))
	}

	return dimension{score: score, reasoning: reasoning}
}

func (e *Engine) geographicRelevance(posting job.Posting, candidate profile.Candidate) dimension {
	var score float64
	reasoning := make([]string, 0)

	distance := e.tax.DistanceKm(posting.Location, candidate.Location)
	switch {
	case distance <= 20:
		score += 100
		reasoning = append(reasoning, fmt.Sprintf("✓ Excellent location match: %dkm from job", distance))
	case distance <= 50:
		score += 80
		reasoning = append(reasoning, fmt.Sprintf("✓ Good location match: %dkm (reasonable commute)", distance))
	case distance <= 100:
		score += 60
		reasoning = append(reasoning, fmt.Sprintf("◐ Moderate distance: %dkm (requires commitment)", distance))
	default:
		score += 30
		reasoning = append(reasoning, fmt.Sprintf("⚠ Long distance: %dkm (relocation needed)", distance))
	}

	prefs := candidate.Preferences
	if distance > relocationDistanceKm {
		if prefs.WillingToRelocate || containsCity(prefs.InterestedCities, posting.Location) {
			score += relocationBonus
			reasoning = append(reasoning, "✓ Open to relocation or interested in "+posting.Location)
		} else {
			score -= relocationPenalty
			reasoning = append(reasoning, "⚠ Long distance without relocation interest")
		}
	}

	if posting.OffersRemote() && prefs.RemoteWorkInterest {
		score += remoteBonus
		reasoning = append(reasoning, fmt.Sprintf("✓ Remote options available (%s)", posting.RemoteOptions))
	}

	return dimension{score: clamp(score), reasoning: reasoning}
}

func (e *Engine) experienceRelevance(posting job.Posting, candidate profile.Candidate) dimension {
	var score float64
	reasoning := make([]string, 0)

	technologies := make(map[string]struct{})
	for _, p := range candidate.Projects {
		for _, tech := range p.Technologies {
			if t := normalize(tech); t != "" {
				technologies[t] = struct{}{}
			}
		}
	}

	skills := nonEmpty(posting.Academic.SkillsRequired)
	if len(skills) == 0 {
		score += skillPoints
		reasoning = append(reasoning, "✓ No skill requirement")
	} else {
		per := skillPoints / float64(len(skills))
		for _, skill := range skills {
			if _, ok := technologies[normalize(skill)]; ok {
				score += per
				reasoning = append(reasoning, "✓ Has required skill: "+skill)
			}
		}
	}

	quality := 0
	for _, p := range candidate.Projects {
		if hasEvidence(p) {
			quality++
		}
	}
	switch {
	case quality >= 2:
		score += 20
		reasoning = append(reasoning, "✓ Multiple quality projects with demos/outcomes")
	case quality == 1:
		score += 10
		reasoning = append(reasoning, "✓ At least one quality project with evidence")
	}

	score = clamp(score)
	if score < e.thresholds.Experience {
		reasoning = append(reasoning, "⚠ Limited relevant experience - consider building projects with required skills")
	}

	return dimension{score: score, reasoning: reasoning}
}

func (e *Engine) improvements(academic, geographic, experience float64) []string {
	out := make([]string, 0)
	if academic < e.thresholds.Academic {
		out = append(out,
			"Consider taking additional courses in the required field",
			"Build projects that demonstrate skills from your coursework",
		)
	}
	if geographic < e.thresholds.Geographic {
		out = append(out,
			"Consider updating location preferences if interested in this area",
			"Look for similar roles in your preferred geographic area",
		)
	}
	if experience < e.thresholds.Experience {
		out = append(out,
			"Build projects using the required technologies",
			"Add GitHub repositories and demo links to strengthen your portfolio",
		)
	}
	return out
}

func findCourse(courses []profile.Course, required string) (profile.Course, bool) {
	req := normalize(required)
	for _, c := range courses {
		name := normalize(c.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, req) || strings.Contains(req, name) {
			return c, true
		}
	}
	return profile.Course{}, false
}

func findProject(projects []profile.Project, projectType string) (profile.Project, bool) {
	pt := normalize(projectType)
	for _, p := range projects {
		text := strings.ToLower(p.Title + " " + p.Description)
		if strings.Contains(text, pt) {
			return p, true
		}
	}
	return profile.Project{}, false
}

func hasEvidence(p profile.Project) bool {
	return strings.TrimSpace(p.RepositoryURL) != "" ||
		strings.TrimSpace(p.DemoURL) != "" ||
		strings.TrimSpace(p.Outcome) != ""
}

func containsCity(cities []string, city string) bool {
	target := normalize(city)
	if target == "" {
		return false
	}
	for _, c := range cities {
		if normalize(c) == target {
			return true
		}
	}
	return false
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// clamp bounds a dimension score to [0,100] at two decimals, so 30/3+30/3+30/3 lands on 30.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return round2(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

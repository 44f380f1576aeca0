package progression

import (
	"fmt"
	"math"
	"strings"

	"career-match/internal/domain/profile"
	"career-match/internal/domain/taxonomy"
)

const (
	requiredSkillsWeight  = 30.0
	preferredSkillsWeight = 20.0
	projectWeight         = 30.0
	portfolioWeight       = 20.0

	longDescription = 100
)

const (
	LevelSenior = "Senior"
	LevelMid    = "Mid-level"
	LevelJunior = "Junior"
	LevelEntry  = "Entry-level with development needed"
)

type SkillType string

const (
	SkillRequired  SkillType = "required"
	SkillPreferred SkillType = "preferred"
)

type PresentSkill struct {
	Skill    string                    `json:"skill"`
	Type     SkillType                 `json:"type"`
	Level    taxonomy.ProficiencyLevel `json:"level"`
	Evidence []string                  `json:"evidence"`
}

type MissingSkill struct {
	Skill    string                    `json:"skill"`
	Current  taxonomy.ProficiencyLevel `json:"current"`
	Required taxonomy.ProficiencyLevel `json:"required"`
	Type     SkillType                 `json:"type"`
}

type Breakdown struct {
	RequiredSkills  float64 `json:"required_skills"`
	PreferredSkills float64 `json:"preferred_skills"`
	Projects        float64 `json:"projects"`
	Portfolio       float64 `json:"portfolio"`
}

type RoleReadiness struct {
	CurrentMatch    int            `json:"current_match"`
	PresentSkills   []PresentSkill `json:"present_skills"`
	MissingSkills   []MissingSkill `json:"missing_skills"`
	ReadyForLevel   string         `json:"ready_for_level"`
	ProjectEvidence []string       `json:"project_evidence"`
	Breakdown       Breakdown      `json:"breakdown"`
	Timeline        string         `json:"timeline"`
}

// AssessJobReadiness scores the history against every role in the catalog, keyed by role title.
func (t *Tracker) AssessJobReadiness(courses []profile.Course, projects []profile.Project, evolution SkillEvolution) map[string]RoleReadiness {
	held := t.heldSkills(courses, projects)
	portfolio := portfolioQuality(projects)

	out := make(map[string]RoleReadiness)
	for _, role := range t.tax.Roles() {
		out[role.Title] = t.assessRole(role, courses, projects, evolution, held, portfolio)
	}
	return out
}

func (t *Tracker) assessRole(
	role taxonomy.JobRoleProfile,
	courses []profile.Course,
	projects []profile.Project,
	evolution SkillEvolution,
	held map[string]struct{},
	portfolio float64,
) RoleReadiness {
	var b Breakdown
	present := make([]PresentSkill, 0)
	missing := make([]MissingSkill, 0)

	if len(role.RequiredSkills) > 0 {
		per := requiredSkillsWeight / float64(len(role.RequiredSkills))
		for _, skill := range role.RequiredSkills {
			_, has := held[skill]
			level := evolution.Latest(skill)
			if has && level.AtLeast(role.MinimumLevel) {
				b.RequiredSkills += per
				present = append(present, PresentSkill{
					Skill:    skill,
					Type:     SkillRequired,
					Level:    level,
					Evidence: t.skillEvidence(courses, projects, skill),
				})
				continue
			}
			missing = append(missing, MissingSkill{
				Skill:    skill,
				Current:  level,
				Required: role.MinimumLevel,
				Type:     SkillRequired,
			})
		}
	}

	if len(role.PreferredSkills) > 0 {
		per := preferredSkillsWeight / float64(len(role.PreferredSkills))
		for _, skill := range role.PreferredSkills {
			if _, has := held[skill]; !has {
				continue
			}
			b.PreferredSkills += per
			present = append(present, PresentSkill{
				Skill:    skill,
				Type:     SkillPreferred,
				Level:    evolution.Latest(skill),
				Evidence: t.skillEvidence(courses, projects, skill),
			})
		}
	}

	b.Projects = projectRequirementScore(projects, role.ProjectRequirements) * projectWeight
	b.Portfolio = portfolio * portfolioWeight

	raw := b.RequiredSkills + b.PreferredSkills + b.Projects + b.Portfolio
	current := clampScore(raw)

	b.RequiredSkills = round2(b.RequiredSkills)
	b.PreferredSkills = round2(b.PreferredSkills)
	b.Projects = round2(b.Projects)
	b.Portfolio = round2(b.Portfolio)

	return RoleReadiness{
		CurrentMatch:    current,
		PresentSkills:   present,
		MissingSkills:   missing,
		ReadyForLevel:   readyLevel(raw),
		ProjectEvidence: relevantProjects(projects, role.ProjectRequirements),
		Breakdown:       b,
		Timeline:        readinessTimeline(current),
	}
}

func (t *Tracker) heldSkills(courses []profile.Course, projects []profile.Project) map[string]struct{} {
	held := make(map[string]struct{})
	for _, c := range courses {
		for _, s := range t.courseSkills(c) {
			held[s] = struct{}{}
		}
	}
	for _, p := range projects {
		for _, s := range t.projectSkills(p) {
			held[s] = struct{}{}
		}
	}
	return held
}

func (t *Tracker) skillEvidence(courses []profile.Course, projects []profile.Project, skill string) []string {
	out := make([]string, 0)
	for _, c := range courses {
		if contains(t.courseSkills(c), skill) {
			out = append(out, fmt.Sprintf("%s (%g/30)", c.Name, c.Grade))
		}
	}
	for _, p := range projects {
		if contains(t.projectSkills(p), skill) {
			out = append(out, "Project: "+p.Title)
		}
	}
	return out
}

// projectRequirementScore is the fraction of requirements some project title or description mentions.
// An empty requirement list earns nothing.
func projectRequirementScore(projects []profile.Project, requirements []string) float64 {
	if len(requirements) == 0 {
		return 0
	}
	var score float64
	for _, req := range requirements {
		for _, p := range projects {
			if mentions(p, req) {
				score += 1 / float64(len(requirements))
				break
			}
		}
	}
	return math.Min(score, 1)
}

func relevantProjects(projects []profile.Project, requirements []string) []string {
	out := make([]string, 0)
	for _, p := range projects {
		for _, req := range requirements {
			if mentions(p, req) {
				out = append(out, p.Title)
				break
			}
		}
	}
	return out
}

func mentions(p profile.Project, requirement string) bool {
	req := strings.ToLower(strings.TrimSpace(requirement))
	if req == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Title), req) ||
		strings.Contains(strings.ToLower(p.Description), req)
}

// portfolioQuality sums per-project evidence across the whole portfolio, capped at 1.
func portfolioQuality(projects []profile.Project) float64 {
	var score float64
	for _, p := range projects {
		if strings.TrimSpace(p.RepositoryURL) != "" {
			score += 0.2
		}
		if strings.TrimSpace(p.DemoURL) != "" {
			score += 0.2
		}
		if strings.TrimSpace(p.Outcome) != "" {
			score += 0.3
		}
		if len(p.Description) > longDescription {
			score += 0.1
		}
	}
	return math.Min(score, 1)
}

func readyLevel(score float64) string {
	switch {
	case score >= 85:
		return LevelSenior
	case score >= 70:
		return LevelMid
	case score >= 55:
		return LevelJunior
	default:
		return LevelEntry
	}
}

func readinessTimeline(score int) string {
	switch {
	case score >= 85:
		return "Ready now"
	case score >= 70:
		return "Ready in 1-3 months with focused learning"
	case score >= 55:
		return "Ready in 3-6 months with skill development"
	case score >= 40:
		return "Ready in 6-12 months with significant development"
	default:
		return "Needs 12+ months of focused development"
	}
}

package progression

import (
	"fmt"
	"sort"
	"strings"
)

type Trend string

const (
	TrendRapidlyImproving Trend = "rapidly_improving"
	TrendImproving        Trend = "improving"
	TrendStable           Trend = "stable"
	TrendDeclining        Trend = "declining"
)

type ReadinessPoint struct {
	Year      int `json:"year"`
	Readiness int `json:"readiness"`
}

type Trajectory struct {
	Trend                Trend            `json:"trend"`
	CareerReadinessTrend []ReadinessPoint `json:"career_readiness_trend"`
	SkillGrowthRate      int              `json:"skill_growth_rate"`
}

// PredictCareerTrajectory reads the trend from the GPA change between the two most recent years.
// A history shorter than two years is reported as improving.
func (t *Tracker) PredictCareerTrajectory(years []Year, _ SkillEvolution) Trajectory {
	out := Trajectory{
		Trend:                TrendImproving,
		CareerReadinessTrend: make([]ReadinessPoint, 0, len(years)),
	}

	if n := len(years); n >= 2 {
		delta := years[n-1].GPA - years[n-2].GPA
		switch {
		case delta > 1:
			out.Trend = TrendRapidlyImproving
		case delta > 0.5:
			out.Trend = TrendImproving
		case delta < -0.5:
			out.Trend = TrendDeclining
		default:
			out.Trend = TrendStable
		}
		out.SkillGrowthRate = len(years[n-1].SkillsAcquired) - len(years[0].SkillsAcquired)
	}

	for _, y := range years {
		out.CareerReadinessTrend = append(out.CareerReadinessTrend, ReadinessPoint{Year: y.Year, Readiness: y.CareerReadiness})
	}
	return out
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Recommendation struct {
	Type     string   `json:"type"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

const (
	careerReadyMin     = 70
	skillGapMin        = 60
	skillGapMax        = 85
	maxGapSkills       = 2
	minProjectEvidence = 3
)

// GenerateRecommendations walks roles in catalog order. The top role is the highest current
// match, the earliest cataloged role winning ties.
func (t *Tracker) GenerateRecommendations(_ SkillEvolution, readiness map[string]RoleReadiness) []Recommendation {
	out := make([]Recommendation, 0)

	titles := make([]string, 0, len(readiness))
	for _, role := range t.tax.Roles() {
		if _, ok := readiness[role.Title]; ok {
			titles = append(titles, role.Title)
		}
	}

	top, best := "", -1
	for _, title := range titles {
		if m := readiness[title].CurrentMatch; m > best {
			top, best = title, m
		}
	}
	if top != "" && best >= careerReadyMin {
		out = append(out, Recommendation{
			Type:     "career_ready",
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("You're ready for %s roles! Start applying to junior positions.", top),
			Action:   fmt.Sprintf("Search for %s jobs in your area", top),
		})
	}

	evidence := 0
	for _, title := range titles {
		r := readiness[title]
		evidence += len(r.ProjectEvidence)
		if r.CurrentMatch < skillGapMin || r.CurrentMatch >= skillGapMax {
			continue
		}
		gaps := make([]string, 0, maxGapSkills)
		for _, m := range r.MissingSkills {
			if m.Type != SkillRequired {
				continue
			}
			gaps = append(gaps, m.Skill)
			if len(gaps) == maxGapSkills {
				break
			}
		}
		if len(gaps) == 0 {
			continue
		}
		out = append(out, Recommendation{
			Type:     "skill_development",
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("To improve your %s readiness, focus on: %s", title, strings.Join(gaps, ", ")),
			Action:   "Build projects demonstrating these skills",
		})
	}

	if evidence < minProjectEvidence {
		out = append(out, Recommendation{
			Type:     "portfolio_development",
			Priority: PriorityMedium,
			Message:  "Build more projects to strengthen your portfolio",
			Action:   "Create 2-3 projects showcasing different skills",
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.rank() < out[j].Priority.rank()
	})
	return out
}

package progression

import (
	"fmt"
	"sort"
	"strings"

	"career-match/internal/domain/profile"
	"career-match/internal/domain/taxonomy"
)

const maxEvidencePerYear = 3

type evidenceSource int

const (
	fromCourse evidenceSource = iota
	fromProject
)

type evidenceEntry struct {
	year     int
	source   evidenceSource
	grade    float64
	evidence []string
}

type SkillLevelEntry struct {
	Year     int                       `json:"year"`
	Level    taxonomy.ProficiencyLevel `json:"level"`
	Evidence []string                  `json:"evidence"`
}

// SkillEvolution maps a skill to its per-year level entries, oldest first.
type SkillEvolution map[string][]SkillLevelEntry

// Latest returns the most recent level reached for a skill, LevelNone when it was never seen.
func (se SkillEvolution) Latest(skill string) taxonomy.ProficiencyLevel {
	entries := se[skill]
	if len(entries) == 0 {
		return taxonomy.LevelNone
	}
	return entries[len(entries)-1].Level
}

func (t *Tracker) TrackSkillEvolution(courses []profile.Course, projects []profile.Project) SkillEvolution {
	timeline := make(map[string][]evidenceEntry)

	for _, c := range courses {
		y := t.courseYear(c)
		for _, s := range t.courseSkills(c) {
			timeline[s] = append(timeline[s], evidenceEntry{
				year:   y,
				source: fromCourse,
				grade:  c.Grade,
				evidence: []string{
					"Completed " + c.Name,
					fmt.Sprintf("Grade: %g/30", c.Grade),
				},
			})
		}
	}

	for _, p := range projects {
		y := t.projectYear(p)
		ev := make([]string, 0, 2)
		if d := strings.TrimSpace(p.Description); d != "" {
			ev = append(ev, p.Description)
		}
		if o := strings.TrimSpace(p.Outcome); o != "" {
			ev = append(ev, p.Outcome)
		}
		for _, s := range t.projectSkills(p) {
			timeline[s] = append(timeline[s], evidenceEntry{
				year:     y,
				source:   fromProject,
				evidence: append([]string(nil), ev...),
			})
		}
	}

	out := make(SkillEvolution, len(timeline))
	for skill, entries := range timeline {
		out[skill] = skillProgression(entries)
	}
	return out
}

func skillProgression(entries []evidenceEntry) []SkillLevelEntry {
	byYear := make(map[int][]evidenceEntry)
	years := make([]int, 0)
	for _, e := range entries {
		if _, ok := byYear[e.year]; !ok {
			years = append(years, e.year)
		}
		byYear[e.year] = append(byYear[e.year], e)
	}
	sort.Ints(years)

	out := make([]SkillLevelEntry, 0, len(years))
	for _, y := range years {
		group := byYear[y]
		evidence := make([]string, 0, maxEvidencePerYear)
		for _, e := range group {
			for _, ev := range e.evidence {
				if len(evidence) == maxEvidencePerYear {
					break
				}
				evidence = append(evidence, ev)
			}
		}
		out = append(out, SkillLevelEntry{
			Year:     y,
			Level:    determineLevel(group),
			Evidence: evidence,
		})
	}
	return out
}

// determineLevel grades one year of evidence. Ungraded entries do not dilute the average grade.
func determineLevel(group []evidenceEntry) taxonomy.ProficiencyLevel {
	total := 0
	hasProject := false
	var gradeSum float64
	graded := 0
	for _, e := range group {
		total += len(e.evidence)
		if e.source == fromProject {
			hasProject = true
		}
		if e.grade > 0 {
			gradeSum += e.grade
			graded++
		}
	}
	var avg float64
	if graded > 0 {
		avg = gradeSum / float64(graded)
	}

	switch {
	case total >= 6 && hasProject && avg >= 28:
		return taxonomy.Expert
	case total >= 4 && hasProject && avg >= 26:
		return taxonomy.Advanced
	case total >= 2 && avg >= 24:
		return taxonomy.Intermediate
	default:
		return taxonomy.Beginner
	}
}

package progression

import (
	"math"
	"sort"

	"career-match/internal/domain/profile"
)

const (
	gpaScale         = 30.0
	normalCourseLoad = 8.0
	normalProjects   = 2.0

	highGPA          = 28.0
	excellenceGrade  = 30.0
	diverseSkillsMin = 5
)

type YearCourse struct {
	Name       string   `json:"name"`
	Grade      float64  `json:"grade"`
	Credits    float64  `json:"credits"`
	Semester   string   `json:"semester,omitempty"`
	Instructor string   `json:"instructor,omitempty"`
	Skills     []string `json:"skills"`
}

type YearProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	Outcome      string   `json:"outcome,omitempty"`
}

type Year struct {
	Year            int           `json:"year"`
	Courses         []YearCourse  `json:"courses"`
	Projects        []YearProject `json:"projects"`
	TotalCredits    float64       `json:"total_credits"`
	GPA             float64       `json:"gpa"`
	SkillsAcquired  []string      `json:"skills_acquired"`
	CareerReadiness int           `json:"career_readiness"`
	KeyDevelopments []string      `json:"key_developments"`
}

// BuildYearlyProgression buckets courses by the year in their term label. Projects join the
// bucket of their creation year only when that year already has courses.
func (t *Tracker) BuildYearlyProgression(courses []profile.Course, projects []profile.Project) []Year {
	buckets := make(map[int]*Year)
	weighted := make(map[int]float64)
	skillSeen := make(map[int]map[string]struct{})

	for _, c := range courses {
		y := t.courseYear(c)
		b, ok := buckets[y]
		if !ok {
			b = &Year{
				Year:            y,
				Courses:         []YearCourse{},
				Projects:        []YearProject{},
				SkillsAcquired:  []string{},
				KeyDevelopments: []string{},
			}
			buckets[y] = b
			skillSeen[y] = make(map[string]struct{})
		}

		skills := t.courseSkills(c)
		if skills == nil {
			skills = []string{}
		}
		credits := c.EffectiveCredits()
		b.Courses = append(b.Courses, YearCourse{
			Name:       c.Name,
			Grade:      c.Grade,
			Credits:    credits,
			Semester:   c.Semester,
			Instructor: c.Instructor,
			Skills:     skills,
		})
		b.TotalCredits += credits
		weighted[y] += c.Grade * credits

		for _, s := range skills {
			if _, dup := skillSeen[y][s]; dup {
				continue
			}
			skillSeen[y][s] = struct{}{}
			b.SkillsAcquired = append(b.SkillsAcquired, s)
		}
	}

	for _, p := range projects {
		b, ok := buckets[t.projectYear(p)]
		if !ok {
			continue
		}
		techs := p.Technologies
		if techs == nil {
			techs = []string{}
		}
		b.Projects = append(b.Projects, YearProject{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: techs,
			Outcome:      p.Outcome,
		})
	}

	out := make([]Year, 0, len(buckets))
	for y, b := range buckets {
		if b.TotalCredits > 0 {
			b.GPA = weighted[y] / b.TotalCredits
		}
		b.CareerReadiness = yearlyReadiness(*b)
		b.KeyDevelopments = keyDevelopments(*b)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func yearlyReadiness(y Year) int {
	r := (y.GPA/gpaScale)*40 +
		math.Min(float64(len(y.Courses))/normalCourseLoad, 1)*30 +
		math.Min(float64(len(y.Projects))/normalProjects, 1)*30
	return clampScore(r)
}

func keyDevelopments(y Year) []string {
	out := make([]string, 0)
	if y.GPA >= highGPA {
		out = append(out, "High academic performance")
	}
	if len(y.Projects) >= 2 {
		out = append(out, "Strong project portfolio")
	}
	if len(y.SkillsAcquired) >= diverseSkillsMin {
		out = append(out, "Diverse skill acquisition")
	}
	for _, c := range y.Courses {
		if c.Grade >= excellenceGrade {
			out = append(out, "Excellence in specialized areas")
			break
		}
	}
	return out
}

func clampScore(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

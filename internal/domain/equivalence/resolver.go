// Package equivalence decides when two courses from different institutions teach the same
// skill family, and ranks the equivalents of a course across every known institution.
package equivalence

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"career-match/internal/domain/taxonomy"
)

const (
	// DefaultEquivalenceThreshold is the minimum family similarity for a course to be listed as an equivalent.
	DefaultEquivalenceThreshold = 0.70
	// DefaultRequirementSimilarity is the minimum similarity for a course to satisfy a job requirement.
	DefaultRequirementSimilarity = 0.80
	// DefaultMinGrade applies when a requirement carries no minimum grade (30-point scale).
	DefaultMinGrade = 18.0

	MaxSuggestions = 5
	// minSuggestionWord drops words like "e" or "di" that would otherwise match almost any title.
	minSuggestionWord = 3

	ErrCourseNotFound = "Course not found in database"
)

type Option func(*Resolver)

func WithEquivalenceThreshold(v float64) Option {
	return func(r *Resolver) {
		if v >= 0 && v <= 1 {
			r.threshold = v
		}
	}
}

func WithDefaultMinGrade(v float64) Option {
	return func(r *Resolver) {
		if v > 0 {
			r.minGrade = v
		}
	}
}

// Resolver is safe for concurrent use; it only reads the taxonomy.
type Resolver struct {
	tax       *taxonomy.Taxonomy
	threshold float64
	minGrade  float64
}

func NewResolver(tax *taxonomy.Taxonomy, opts ...Option) *Resolver {
	r := &Resolver{
		tax:       tax,
		threshold: DefaultEquivalenceThreshold,
		minGrade:  DefaultMinGrade,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Resolver) Taxonomy() *taxonomy.Taxonomy {
	return r.tax
}

// MapCourse resolves a course to its skill family: the institution's own table first, then the
// Generic table, then the fuzzy keyword table in declaration order.
func (r *Resolver) MapCourse(courseName, institution string) (taxonomy.SkillFamilyID, bool) {
	name := strings.TrimSpace(courseName)
	if name == "" {
		return "", false
	}
	inst := strings.TrimSpace(institution)
	if inst != "" {
		if id, ok := r.tax.LookupCourse(inst, name); ok {
			return id, true
		}
	}
	if id, ok := r.tax.LookupCourse(taxonomy.GenericInstitution, name); ok {
		return id, true
	}
	return r.fuzzyMatch(name)
}

func (r *Resolver) fuzzyMatch(courseName string) (taxonomy.SkillFamilyID, bool) {
	tokens := tokenize(courseName)
	if len(tokens) == 0 {
		return "", false
	}
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}
	phrase := " " + strings.Join(tokens, " ") + " "

	for _, set := range r.tax.Keywords() {
		for _, kw := range set.Keywords {
			kwTokens := tokenize(kw)
			switch len(kwTokens) {
			case 0:
				continue
			case 1:
				if _, ok := tokenSet[kwTokens[0]]; ok {
					return set.Family, true
				}
			default:
				if strings.Contains(phrase, " "+strings.Join(kwTokens, " ")) {
					return set.Family, true
				}
			}
		}
	}
	return "", false
}

// Similarity is 1.0 for identical families, the declared edge in either ordering otherwise, and
// the Jaccard index over core+related skills when no edge exists. Unknown families score 0.
func (r *Resolver) Similarity(a, b taxonomy.SkillFamilyID) float64 {
	if a == b {
		if _, ok := r.tax.Family(a); ok {
			return 1.0
		}
		return 0
	}
	if w, ok := r.tax.Edge(a, b); ok {
		return w
	}
	if w, ok := r.tax.Edge(b, a); ok {
		return w
	}

	fa, okA := r.tax.Family(a)
	fb, okB := r.tax.Family(b)
	if !okA || !okB {
		return 0
	}

	skillsA := fa.AllSkills()
	skillsB := fb.AllSkills()
	union := make(map[string]struct{}, len(skillsA)+len(skillsB))
	inA := make(map[string]struct{}, len(skillsA))
	for _, s := range skillsA {
		union[s] = struct{}{}
		inA[s] = struct{}{}
	}
	shared := 0
	for _, s := range skillsB {
		union[s] = struct{}{}
		if _, ok := inA[s]; ok {
			shared++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(shared) / float64(len(union))
}

// SharedSkills lists the core+related skills of a that b also has, in a's order.
func (r *Resolver) SharedSkills(a, b taxonomy.SkillFamilyID) []string {
	fa, okA := r.tax.Family(a)
	fb, okB := r.tax.Family(b)
	if !okA || !okB {
		return []string{}
	}
	inB := make(map[string]struct{})
	for _, s := range fb.AllSkills() {
		inB[s] = struct{}{}
	}
	out := make([]string, 0)
	for _, s := range fa.AllSkills() {
		if _, ok := inB[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// SkillsForCourse returns the skills implied by a course: the family identifier itself, then the
// family's core and related skills. It returns nil when the course cannot be resolved.
func (r *Resolver) SkillsForCourse(courseName, institution string) []string {
	id, ok := r.MapCourse(courseName, institution)
	if !ok {
		return nil
	}
	f, ok := r.tax.Family(id)
	if !ok {
		return nil
	}
	out := []string{string(id)}
	for _, s := range f.AllSkills() {
		if s != string(id) {
			out = append(out, s)
		}
	}
	return out
}

type CourseRef struct {
	Name        string                 `json:"name"`
	Institution string                 `json:"institution"`
	SkillFamily taxonomy.SkillFamilyID `json:"skill_family"`
	CoreSkills  []string               `json:"core_skills"`
}

type Equivalent struct {
	CourseName   string                 `json:"course_name"`
	Institution  string                 `json:"institution"`
	SkillFamily  taxonomy.SkillFamilyID `json:"skill_family"`
	Similarity   float64                `json:"similarity"`
	CoreSkills   []string               `json:"core_skills"`
	SharedSkills []string               `json:"shared_skills"`
}

type Suggestion struct {
	CourseName  string `json:"course_name"`
	Institution string `json:"institution"`
	Reason      string `json:"reason"`
}

type Result struct {
	OriginalCourse *CourseRef   `json:"original_course,omitempty"`
	Equivalents    []Equivalent `json:"equivalents"`
	TotalFound     int          `json:"total_found"`
	Error          string       `json:"error,omitempty"`
	Suggestions    []Suggestion `json:"suggestions,omitempty"`
}

func (res Result) Resolved() bool {
	return res.Error == "" && res.OriginalCourse != nil
}

// FindEquivalents lists courses at every other institution whose family is at least the
// equivalence threshold similar to the source course's family, most similar first.
func (r *Resolver) FindEquivalents(courseName, sourceInstitution string) Result {
	src := strings.TrimSpace(sourceInstitution)
	if src == "" {
		src = taxonomy.GenericInstitution
	}

	family, ok := r.MapCourse(courseName, src)
	if !ok {
		return Result{
			Equivalents: []Equivalent{},
			Error:       ErrCourseNotFound,
			Suggestions: r.SuggestSimilarCourses(courseName),
		}
	}

	srcFamily, _ := r.tax.Family(family)
	out := Result{
		OriginalCourse: &CourseRef{
			Name:        courseName,
			Institution: src,
			SkillFamily: family,
			CoreSkills:  srcFamily.CoreSkills,
		},
		Equivalents: []Equivalent{},
	}

	for _, m := range r.tax.CourseMappings() {
		if m.Institution == src {
			continue
		}
		for _, c := range m.Courses {
			sim := r.Similarity(family, c.Family)
			if sim < r.threshold {
				continue
			}
			f, _ := r.tax.Family(c.Family)
			out.Equivalents = append(out.Equivalents, Equivalent{
				CourseName:   c.Name,
				Institution:  m.Institution,
				SkillFamily:  c.Family,
				Similarity:   round2(sim),
				CoreSkills:   f.CoreSkills,
				SharedSkills: r.SharedSkills(family, c.Family),
			})
		}
	}

	sort.SliceStable(out.Equivalents, func(i, j int) bool {
		return out.Equivalents[i].Similarity > out.Equivalents[j].Similarity
	})
	out.TotalFound = len(out.Equivalents)
	return out
}

// SuggestSimilarCourses returns up to MaxSuggestions known courses sharing a word (either
// containing the other) with courseName, in table order.
func (r *Resolver) SuggestSimilarCourses(courseName string) []Suggestion {
	words := suggestionWords(courseName)
	out := make([]Suggestion, 0, MaxSuggestions)
	if len(words) == 0 {
		return out
	}

	for _, m := range r.tax.CourseMappings() {
		for _, c := range m.Courses {
			titleWords := suggestionWords(c.Name)
			shared := make([]string, 0)
			for _, w := range words {
				for _, tw := range titleWords {
					if strings.Contains(tw, w) || strings.Contains(w, tw) {
						shared = append(shared, w)
						break
					}
				}
			}
			if len(shared) == 0 {
				continue
			}
			out = append(out, Suggestion{
				CourseName:  c.Name,
				Institution: m.Institution,
				Reason:      "Similar keywords: " + strings.Join(shared, ", "),
			})
			if len(out) == MaxSuggestions {
				return out
			}
		}
	}
	return out
}

type StudentCourse struct {
	Name        string  `json:"name"`
	Institution string  `json:"institution,omitempty"`
	Grade       float64 `json:"grade"`
}

type CourseRequirement struct {
	CourseName  string  `json:"course_name"`
	Institution string  `json:"institution,omitempty"`
	MinGrade    float64 `json:"min_grade,omitempty"`
}

type RequirementMatch struct {
	Match        bool     `json:"match"`
	Similarity   float64  `json:"similarity"`
	GradeMatch   bool     `json:"grade_match"`
	SharedSkills []string `json:"shared_skills"`
	Reason       string   `json:"reason"`
}

// CheckRequirementMatch fails closed when either course cannot be resolved. A non-positive
// minSimilarity selects DefaultRequirementSimilarity.
func (r *Resolver) CheckRequirementMatch(student StudentCourse, req CourseRequirement, minSimilarity float64) RequirementMatch {
	if minSimilarity <= 0 {
		minSimilarity = DefaultRequirementSimilarity
	}

	studentFamily, okS := r.MapCourse(student.Name, student.Institution)
	reqInst := req.Institution
	if strings.TrimSpace(reqInst) == "" {
		reqInst = taxonomy.GenericInstitution
	}
	jobFamily, okJ := r.MapCourse(req.CourseName, reqInst)
	if !okS || !okJ {
		return RequirementMatch{
			Match:        false,
			SharedSkills: []string{},
			Reason:       "Course not found in skill database",
		}
	}

	minGrade := req.MinGrade
	if minGrade <= 0 {
		minGrade = r.minGrade
	}

	sim := r.Similarity(studentFamily, jobFamily)
	gradeMatch := student.Grade >= minGrade

	var reason string
	switch {
	case sim < minSimilarity:
		reason = fmt.Sprintf("Skill similarity too low (%d%%)", int(math.Round(sim*100)))
	case !gradeMatch:
		reason = fmt.Sprintf("Grade too low (%s/%s)", formatGrade(student.Grade), formatGrade(minGrade))
	default:
		reason = "Full match"
	}

	return RequirementMatch{
		Match:        sim >= minSimilarity && gradeMatch,
		Similarity:   sim,
		GradeMatch:   gradeMatch,
		SharedSkills: r.SharedSkills(studentFamily, jobFamily),
		Reason:       reason,
	}
}

func suggestionWords(s string) []string {
	out := make([]string, 0)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len([]rune(w)) >= minSuggestionWord {
			out = append(out, w)
		}
	}
	return out
}

// tokenize splits on anything but letters and digits, so hyphenated words yield their parts.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatGrade(g float64) string {
	return fmt.Sprintf("%g", g)
}

// Package taxonomy holds the read-only knowledge tables the matching engine scores against:
// skill families, per-institution course mappings, the family similarity matrix, the fuzzy
// keyword table, the job-role catalog, the city distance table and the technology→skill table.
package taxonomy

import (
	"strings"
)

const GenericInstitution = "Generic"

type SkillFamilyID string

const (
	MachineLearning     SkillFamilyID = "machine_learning"
	WebDevelopment      SkillFamilyID = "web_development"
	DatabaseSystems     SkillFamilyID = "database_systems"
	Algorithms          SkillFamilyID = "algorithms"
	DataScience         SkillFamilyID = "data_science"
	SoftwareEngineering SkillFamilyID = "software_engineering"
)

type SkillFamily struct {
	ID            SkillFamilyID `json:"id" yaml:"id"`
	CoreSkills    []string      `json:"core_skills" yaml:"core_skills"`
	RelatedSkills []string      `json:"related_skills" yaml:"related_skills"`
	Prerequisites []string      `json:"prerequisites" yaml:"prerequisites"`
	Applications  []string      `json:"applications" yaml:"applications"`
}

// AllSkills returns core skills followed by related skills, without duplicates.
func (f SkillFamily) AllSkills() []string {
	return uniqueStrings(append(append([]string{}, f.CoreSkills...), f.RelatedSkills...))
}

type CourseEntry struct {
	Name   string        `json:"name" yaml:"name"`
	Family SkillFamilyID `json:"family" yaml:"family"`
}

type CourseMapping struct {
	Institution string        `json:"institution" yaml:"institution"`
	Courses     []CourseEntry `json:"courses" yaml:"courses"`
}

type SimilarityEdge struct {
	From   SkillFamilyID `json:"from" yaml:"from"`
	To     SkillFamilyID `json:"to" yaml:"to"`
	Weight float64       `json:"weight" yaml:"weight"`
}

type KeywordSet struct {
	Family   SkillFamilyID `json:"family" yaml:"family"`
	Keywords []string      `json:"keywords" yaml:"keywords"`
}

type TimelineEstimate struct {
	JuniorMonths int `json:"junior_months" yaml:"junior_months"`
	MidMonths    int `json:"mid_months" yaml:"mid_months"`
	SeniorMonths int `json:"senior_months" yaml:"senior_months"`
}

type JobRoleProfile struct {
	Title               string           `json:"title" yaml:"title"`
	FieldsOfStudy       []string         `json:"fields_of_study" yaml:"fields_of_study"`
	RequiredCourses     []string         `json:"required_courses" yaml:"required_courses"`
	ProjectExperience   []string         `json:"project_experience" yaml:"project_experience"`
	RequiredSkills      []string         `json:"required_skills" yaml:"required_skills"`
	PreferredSkills     []string         `json:"preferred_skills" yaml:"preferred_skills"`
	MinimumLevel        ProficiencyLevel `json:"minimum_level" yaml:"minimum_level"`
	ProjectRequirements []string         `json:"project_requirements" yaml:"project_requirements"`
	Timeline            TimelineEstimate `json:"timeline" yaml:"timeline"`
}

type CityDistance struct {
	A  string `json:"a" yaml:"a"`
	B  string `json:"b" yaml:"b"`
	Km int    `json:"km" yaml:"km"`
}

type TechnologySkill struct {
	Technology string `json:"technology" yaml:"technology"`
	Skill      string `json:"skill" yaml:"skill"`
}

// Tables is the raw, editable form of a taxonomy. It becomes a Taxonomy only through New.
type Tables struct {
	Families          []SkillFamily     `json:"families" yaml:"families"`
	CourseMappings    []CourseMapping   `json:"course_mappings" yaml:"course_mappings"`
	Similarities      []SimilarityEdge  `json:"similarities" yaml:"similarities"`
	Keywords          []KeywordSet      `json:"keywords" yaml:"keywords"`
	Roles             []JobRoleProfile  `json:"roles" yaml:"roles"`
	Distances         []CityDistance    `json:"distances" yaml:"distances"`
	DefaultDistanceKm int               `json:"default_distance_km" yaml:"default_distance_km"`
	Technologies      []TechnologySkill `json:"technologies" yaml:"technologies"`
	DefaultTechSkill  string            `json:"default_tech_skill" yaml:"default_tech_skill"`
}

type edgeKey struct {
	from SkillFamilyID
	to   SkillFamilyID
}

type cityPair struct {
	a string
	b string
}

// Taxonomy is immutable after New returns; every accessor hands out copies so callers cannot
// reach the internal tables.
type Taxonomy struct {
	families    map[SkillFamilyID]SkillFamily
	familyOrder []SkillFamilyID

	mappings     []CourseMapping
	courseIndex  map[string]map[string]SkillFamilyID
	keywords     []KeywordSet
	edges        map[edgeKey]float64
	roles        []JobRoleProfile
	distances    map[cityPair]int
	defaultKm    int
	techSkills   map[string]string
	defaultSkill string
}

func (t *Taxonomy) Family(id SkillFamilyID) (SkillFamily, bool) {
	if t == nil {
		return SkillFamily{}, false
	}
	f, ok := t.families[id]
	if !ok {
		return SkillFamily{}, false
	}
	return cloneFamily(f), true
}

func (t *Taxonomy) FamilyIDs() []SkillFamilyID {
	if t == nil {
		return nil
	}
	return append([]SkillFamilyID(nil), t.familyOrder...)
}

// LookupCourse is an exact, case-sensitive lookup in one institution's table.
func (t *Taxonomy) LookupCourse(institution, courseName string) (SkillFamilyID, bool) {
	if t == nil {
		return "", false
	}
	courses, ok := t.courseIndex[institution]
	if !ok {
		return "", false
	}
	id, ok := courses[courseName]
	return id, ok
}

func (t *Taxonomy) CourseMappings() []CourseMapping {
	if t == nil {
		return nil
	}
	out := make([]CourseMapping, 0, len(t.mappings))
	for _, m := range t.mappings {
		out = append(out, CourseMapping{
			Institution: m.Institution,
			Courses:     append([]CourseEntry(nil), m.Courses...),
		})
	}
	return out
}

func (t *Taxonomy) Keywords() []KeywordSet {
	if t == nil {
		return nil
	}
	out := make([]KeywordSet, 0, len(t.keywords))
	for _, k := range t.keywords {
		out = append(out, KeywordSet{Family: k.Family, Keywords: append([]string(nil), k.Keywords...)})
	}
	return out
}

// Edge returns the declared similarity for exactly the (from, to) ordering.
func (t *Taxonomy) Edge(from, to SkillFamilyID) (float64, bool) {
	if t == nil {
		return 0, false
	}
	w, ok := t.edges[edgeKey{from: from, to: to}]
	return w, ok
}

func (t *Taxonomy) Roles() []JobRoleProfile {
	if t == nil {
		return nil
	}
	out := make([]JobRoleProfile, 0, len(t.roles))
	for _, r := range t.roles {
		out = append(out, cloneRole(r))
	}
	return out
}

// DistanceKm is symmetric; the same city is 0 km and an unknown pair is the default distance.
func (t *Taxonomy) DistanceKm(cityA, cityB string) int {
	if t == nil {
		return 0
	}
	a := normalizeCity(cityA)
	b := normalizeCity(cityB)
	if a != "" && a == b {
		return 0
	}
	if km, ok := t.distances[cityPair{a: a, b: b}]; ok {
		return km
	}
	if km, ok := t.distances[cityPair{a: b, b: a}]; ok {
		return km
	}
	return t.defaultKm
}

// SkillForTechnology maps a project technology to a skill; unknown technologies fall back to
// the default skill.
func (t *Taxonomy) SkillForTechnology(technology string) string {
	if t == nil {
		return ""
	}
	key := normalizeKey(technology)
	if key == "" {
		return ""
	}
	if s, ok := t.techSkills[key]; ok {
		return s
	}
	return t.defaultSkill
}

func cloneFamily(f SkillFamily) SkillFamily {
	return SkillFamily{
		ID:            f.ID,
		CoreSkills:    append([]string(nil), f.CoreSkills...),
		RelatedSkills: append([]string(nil), f.RelatedSkills...),
		Prerequisites: append([]string(nil), f.Prerequisites...),
		Applications:  append([]string(nil), f.Applications...),
	}
}

func cloneRole(r JobRoleProfile) JobRoleProfile {
	out := r
	out.FieldsOfStudy = append([]string(nil), r.FieldsOfStudy...)
	out.RequiredCourses = append([]string(nil), r.RequiredCourses...)
	out.ProjectExperience = append([]string(nil), r.ProjectExperience...)
	out.RequiredSkills = append([]string(nil), r.RequiredSkills...)
	out.PreferredSkills = append([]string(nil), r.PreferredSkills...)
	out.ProjectRequirements = append([]string(nil), r.ProjectRequirements...)
	return out
}

func normalizeCity(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
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

package taxonomy

import (
	"fmt"
	"strings"
)

const DefaultDistanceKm = 200

// ValidationError collects every problem found in a set of tables.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid taxonomy"
	}
	return "invalid taxonomy: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// New validates the tables and freezes them into a Taxonomy. Every cross reference
// (course → family, edge → family, keyword set → family) is checked here so lookups never have to.
func New(tables Tables) (*Taxonomy, error) {
	verr := &ValidationError{}

	t := &Taxonomy{
		families:     make(map[SkillFamilyID]SkillFamily, len(tables.Families)),
		courseIndex:  make(map[string]map[string]SkillFamilyID, len(tables.CourseMappings)),
		edges:        make(map[edgeKey]float64, len(tables.Similarities)),
		distances:    make(map[cityPair]int, len(tables.Distances)),
		techSkills:   make(map[string]string, len(tables.Technologies)),
		defaultKm:    tables.DefaultDistanceKm,
		defaultSkill: strings.TrimSpace(tables.DefaultTechSkill),
	}
	if t.defaultKm <= 0 {
		t.defaultKm = DefaultDistanceKm
	}

	if len(tables.Families) == 0 {
		verr.addf("no skill families defined")
	}
	for i, f := range tables.Families {
		id := SkillFamilyID(strings.TrimSpace(string(f.ID)))
		if id == "" {
			verr.addf("family #%d has empty id", i)
			continue
		}
		if _, dup := t.families[id]; dup {
			verr.addf("duplicate family %q", id)
			continue
		}
		t.families[id] = SkillFamily{
			ID:            id,
			CoreSkills:    uniqueStrings(f.CoreSkills),
			RelatedSkills: uniqueStrings(f.RelatedSkills),
			Prerequisites: uniqueStrings(f.Prerequisites),
			Applications:  uniqueStrings(f.Applications),
		}
		t.familyOrder = append(t.familyOrder, id)
	}

	for _, m := range tables.CourseMappings {
		inst := strings.TrimSpace(m.Institution)
		if inst == "" {
			verr.addf("course mapping with empty institution")
			continue
		}
		if _, dup := t.courseIndex[inst]; dup {
			verr.addf("duplicate course mapping for institution %q", inst)
			continue
		}
		idx := make(map[string]SkillFamilyID, len(m.Courses))
		entries := make([]CourseEntry, 0, len(m.Courses))
		for _, c := range m.Courses {
			name := strings.TrimSpace(c.Name)
			if name == "" {
				verr.addf("%s: course with empty name", inst)
				continue
			}
			if _, ok := t.families[c.Family]; !ok {
				verr.addf("%s: course %q maps to unknown family %q", inst, name, c.Family)
				continue
			}
			if _, dup := idx[name]; dup {
				verr.addf("%s: duplicate course %q", inst, name)
				continue
			}
			idx[name] = c.Family
			entries = append(entries, CourseEntry{Name: name, Family: c.Family})
		}
		t.courseIndex[inst] = idx
		t.mappings = append(t.mappings, CourseMapping{Institution: inst, Courses: entries})
	}
	if _, ok := t.courseIndex[GenericInstitution]; !ok {
		verr.addf("missing %q course mapping", GenericInstitution)
	}

	for _, e := range tables.Similarities {
		if _, ok := t.families[e.From]; !ok {
			verr.addf("similarity edge from unknown family %q", e.From)
			continue
		}
		if _, ok := t.families[e.To]; !ok {
			verr.addf("similarity edge to unknown family %q", e.To)
			continue
		}
		if e.From == e.To {
			verr.addf("similarity edge %q→%q is a self edge", e.From, e.To)
			continue
		}
		if e.Weight < 0 || e.Weight > 1 {
			verr.addf("similarity edge %q→%q weight %v outside [0,1]", e.From, e.To, e.Weight)
			continue
		}
		if w, ok := t.edges[edgeKey{from: e.To, to: e.From}]; ok && w != e.Weight {
			verr.addf("similarity edges %q↔%q disagree (%v vs %v)", e.From, e.To, e.Weight, w)
			continue
		}
		t.edges[edgeKey{from: e.From, to: e.To}] = e.Weight
	}

	for _, k := range tables.Keywords {
		if _, ok := t.families[k.Family]; !ok {
			verr.addf("keyword set for unknown family %q", k.Family)
			continue
		}
		words := make([]string, 0, len(k.Keywords))
		for _, w := range k.Keywords {
			w = strings.ToLower(strings.Join(strings.Fields(w), " "))
			if w == "" {
				continue
			}
			words = append(words, w)
		}
		if len(words) == 0 {
			verr.addf("keyword set for %q is empty", k.Family)
			continue
		}
		t.keywords = append(t.keywords, KeywordSet{Family: k.Family, Keywords: uniqueStrings(words)})
	}

	titles := make(map[string]struct{}, len(tables.Roles))
	for _, r := range tables.Roles {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			verr.addf("job role with empty title")
			continue
		}
		if _, dup := titles[title]; dup {
			verr.addf("duplicate job role %q", title)
			continue
		}
		if r.MinimumLevel < Beginner || r.MinimumLevel > Expert {
			verr.addf("job role %q has invalid minimum level %d", title, int(r.MinimumLevel))
			continue
		}
		titles[title] = struct{}{}
		role := cloneRole(r)
		role.Title = title
		t.roles = append(t.roles, role)
	}

	for _, d := range tables.Distances {
		a := normalizeCity(d.A)
		b := normalizeCity(d.B)
		if a == "" || b == "" || a == b {
			verr.addf("invalid city pair %q-%q", d.A, d.B)
			continue
		}
		if d.Km < 0 {
			verr.addf("negative distance for %q-%q", d.A, d.B)
			continue
		}
		if km, ok := t.distances[cityPair{a: b, b: a}]; ok && km != d.Km {
			verr.addf("distances %q-%q disagree (%d vs %d)", d.A, d.B, d.Km, km)
			continue
		}
		t.distances[cityPair{a: a, b: b}] = d.Km
	}

	for _, ts := range tables.Technologies {
		key := normalizeKey(ts.Technology)
		skill := strings.TrimSpace(ts.Skill)
		if key == "" || skill == "" {
			verr.addf("invalid technology mapping %q→%q", ts.Technology, ts.Skill)
			continue
		}
		t.techSkills[key] = skill
	}

	if len(verr.Problems) > 0 {
		return nil, verr
	}
	return t, nil
}

// MustNew is New for tables known to be valid at compile time.
func MustNew(tables Tables) *Taxonomy {
	t, err := New(tables)
	if err != nil {
		panic(err)
	}
	return t
}

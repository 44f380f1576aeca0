package taxonomy

import (
	"fmt"
	"strings"
)

// ProficiencyLevel is ordinal: LevelNone < Beginner < Intermediate < Advanced < Expert.
type ProficiencyLevel int

const (
	LevelNone ProficiencyLevel = iota
	Beginner
	Intermediate
	Advanced
	Expert
)

var levelNames = map[ProficiencyLevel]string{
	LevelNone:    "none",
	Beginner:     "beginner",
	Intermediate: "intermediate",
	Advanced:     "advanced",
	Expert:       "expert",
}

func (l ProficiencyLevel) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", int(l))
}

func (l ProficiencyLevel) AtLeast(min ProficiencyLevel) bool {
	return l >= min
}

func ParseLevel(s string) (ProficiencyLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for lvl, name := range levelNames {
		if name == s {
			return lvl, nil
		}
	}
	return LevelNone, fmt.Errorf("unknown proficiency level %q", s)
}

func (l ProficiencyLevel) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("invalid proficiency level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *ProficiencyLevel) UnmarshalText(b []byte) error {
	lvl, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

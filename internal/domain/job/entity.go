package job

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const RemoteNone = "none"

type AcademicRequirements struct {
	FieldsOfStudy     []string `json:"fields_of_study,omitempty"`
	RequiredCourses   []string `json:"required_courses,omitempty"`
	ProjectExperience []string `json:"project_experience,omitempty"`
	SkillsRequired    []string `json:"skills_required,omitempty"`
}

type Posting struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title" validate:"required"`
	Company       string               `json:"company,omitempty"`
	Location      string               `json:"location"`
	RemoteOptions string               `json:"remote_options,omitempty" validate:"omitempty,oneof=none hybrid remote"`
	Academic      AcademicRequirements `json:"academic_requirements"`
}

// OffersRemote reports whether the posting has any remote arrangement.
func (p Posting) OffersRemote() bool {
	r := strings.ToLower(strings.TrimSpace(p.RemoteOptions))
	return r != "" && r != RemoteNone
}

var validate = validator.New()

func (p *Posting) Validate() error {
	return validate.Struct(p)
}

package dto

import (
	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
)

type VisibilityRequest struct {
	Job       job.Posting       `json:"job"`
	Candidate profile.Candidate `json:"candidate"`
}

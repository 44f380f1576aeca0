package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrTargetingRunning  = errors.New("targeting already running for job")
	ErrUnavailable       = errors.New("storage unavailable")
	ErrInternal          = errors.New("internal error")
)

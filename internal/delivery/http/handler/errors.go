package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/usecase"
)

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", dto.FieldErrors(err), err)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrTargetingRunning):
		return middleware.NewAppError(fiber.StatusConflict, "Targeting already running for this job", nil, err)
	case errors.Is(err, usecase.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
}

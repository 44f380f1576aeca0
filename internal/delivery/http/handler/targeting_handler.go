package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"
)

type TargetingHandler struct {
	uc usecase.TargetingUsecase
}

func NewTargetingHandler(uc usecase.TargetingUsecase) *TargetingHandler {
	return &TargetingHandler{uc: uc}
}

func (h *TargetingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/targeting/visibility", h.Visibility)
	r.Post("/jobs/:job_id/targeting", h.TargetJob)
}

func (h *TargetingHandler) Visibility(c fiber.Ctx) error {
	var req dto.VisibilityRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.DetermineVisibility(c.Context(), req.Job, req.Candidate)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *TargetingHandler) TargetJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job_id", nil, err)
	}

	res, err := h.uc.TargetCandidates(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

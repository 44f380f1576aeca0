package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/profile"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"
)

type ProgressionHandler struct {
	uc usecase.ProgressionUsecase
}

func NewProgressionHandler(uc usecase.ProgressionUsecase) *ProgressionHandler {
	return &ProgressionHandler{uc: uc}
}

func (h *ProgressionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/progression/analyze", h.Analyze)
	r.Get("/candidates/:candidate_id/progression", h.CandidateProgression)
}

func (h *ProgressionHandler) Analyze(c fiber.Ctx) error {
	var req profile.Candidate
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Analyze(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProgressionHandler) CandidateProgression(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate_id", nil, err)
	}

	res, err := h.uc.AnalyzeCandidate(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

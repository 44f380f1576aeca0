package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/equivalence"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"
)

type EquivalenceHandler struct {
	uc usecase.EquivalenceUsecase
}

func NewEquivalenceHandler(uc usecase.EquivalenceUsecase) *EquivalenceHandler {
	return &EquivalenceHandler{uc: uc}
}

func (h *EquivalenceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/equivalences")
	grp.Post("/", h.Find)
	grp.Post("/batch", h.FindBatch)
	grp.Post("/requirement-match", h.RequirementMatch)

	r.Get("/similarity", h.Similarity)
	r.Get("/roles", h.Roles)
}

// Find answers 404 with suggestions when the course cannot be resolved.
func (h *EquivalenceHandler) Find(c fiber.Ctx) error {
	var req dto.EquivalenceRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.FindEquivalents(c.Context(), usecase.CourseQuery{CourseName: req.CourseName, Institution: req.Institution})
	if err != nil {
		return mapUsecaseError(err)
	}
	if !res.Resolved() {
		return middleware.NewAppError(fiber.StatusNotFound, equivalence.ErrCourseNotFound, res, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EquivalenceHandler) FindBatch(c fiber.Ctx) error {
	var req dto.EquivalenceBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	qs := make([]usecase.CourseQuery, 0, len(req.Courses))
	for _, it := range req.Courses {
		qs = append(qs, usecase.CourseQuery{CourseName: it.CourseName, Institution: it.Institution})
	}

	res, err := h.uc.FindEquivalentsBatch(c.Context(), qs)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"results": res})
}

func (h *EquivalenceHandler) RequirementMatch(c fiber.Ctx) error {
	var req dto.RequirementMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.CheckRequirementMatch(c.Context(),
		equivalence.StudentCourse{
			Name:        req.StudentCourse.Name,
			Institution: req.StudentCourse.Institution,
			Grade:       req.StudentCourse.Grade,
		},
		equivalence.CourseRequirement{
			CourseName:  req.RequiredCourse.CourseName,
			Institution: req.RequiredCourse.Institution,
			MinGrade:    req.RequiredCourse.MinGrade,
		},
		req.MinSimilarity,
	)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EquivalenceHandler) Similarity(c fiber.Ctx) error {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Query parameters a and b are required", nil, nil)
	}

	res, err := h.uc.Similarity(c.Context(), a, b)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EquivalenceHandler) Roles(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Roles(c.Context()))
}

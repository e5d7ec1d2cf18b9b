package server

import (
	"time"

	"waypoint/internal/models"
	"waypoint/internal/store"
	"waypoint/internal/validation"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) milestoneStore(c *fiber.Ctx) *store.MilestoneStore {
	return store.NewMilestoneStore(s.milestoneRepo, sessionFrom(c))
}

// GetMilestones handles GET /api/milestones.
func (s *Server) GetMilestones(c *fiber.Ctx) error {
	items, err := s.milestoneStore(c).List(c.UserContext())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(items)
}

// CreateMilestone handles POST /api/milestones.
func (s *Server) CreateMilestone(c *fiber.Ctx) error {
	var req models.Milestone
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	created, err := s.milestoneStore(c).Create(c.UserContext(), req)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateMilestone handles PUT /api/milestones/:id. Only the supplied fields
// are applied.
func (s *Server) UpdateMilestone(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.MilestoneUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return respondStoreError(c, err)
	}

	updated, err := s.milestoneStore(c).Update(c.UserContext(), id, req)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(updated)
}

// DeleteMilestone handles DELETE /api/milestones/:id. Deleting a missing id
// succeeds.
func (s *Server) DeleteMilestone(c *fiber.Ctx) error {
	if err := s.milestoneStore(c).Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondStoreError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyGuideTemplate handles POST /api/guides/:id/apply. It bulk-creates
// milestones from the guide's roadmap template starting at the given date.
func (s *Server) ApplyGuideTemplate(c *fiber.Ctx) error {
	var req struct {
		StartDate string `json:"startDate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.StartDate == "" {
		req.StartDate = time.Now().Format("2006-01-02")
	}
	if err := validation.ValidateDate(req.StartDate); err != nil {
		return respondStoreError(c, err)
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("startDate must be in YYYY-MM-DD format"))
	}

	guide, err := store.NewGuideStore(s.guideRepo).Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondStoreError(c, err)
	}

	created, err := s.milestoneStore(c).ApplyTemplate(c.UserContext(), guide.RoadmapTemplate, start)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

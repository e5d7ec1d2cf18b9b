package server

import (
	"waypoint/internal/models"
	"waypoint/internal/store"
	"waypoint/internal/validation"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) dailyStore(c *fiber.Ctx) *store.DailyGoalStore {
	return store.NewDailyGoalStore(s.dailyRepo, sessionFrom(c))
}

// GetDailyGoals handles GET /api/daily-goals.
func (s *Server) GetDailyGoals(c *fiber.Ctx) error {
	goals, err := s.dailyStore(c).List(c.UserContext())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(goals)
}

// GetDailyGoalByDate handles GET /api/daily-goals/:date. A date with no
// record returns an unsaved default rather than a 404.
func (s *Server) GetDailyGoalByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	if err := validation.ValidateDate(date); err != nil {
		return respondStoreError(c, err)
	}

	goal, err := s.dailyStore(c).ForDate(c.UserContext(), date)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(goal)
}

// SetDailyGoalByDate handles PUT /api/daily-goals/:date. The single record
// for the date is created or merged with the supplied fields.
func (s *Server) SetDailyGoalByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	if err := validation.ValidateDate(date); err != nil {
		return respondStoreError(c, err)
	}

	var req models.DailyGoalUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return respondStoreError(c, err)
	}

	goal, err := s.dailyStore(c).SetForDate(c.UserContext(), date, req)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(goal)
}

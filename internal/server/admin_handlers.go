package server

import (
	"waypoint/internal/models"
	"waypoint/internal/store"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) adminStore(c *fiber.Ctx) *store.AdminStore {
	return store.NewAdminStore(s.profileRepo, s.counselingRepo, sessionFrom(c))
}

// GetStudents handles GET /api/admin/students.
func (s *Server) GetStudents(c *fiber.Ctx) error {
	students, err := s.adminStore(c).ListStudents(c.UserContext())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(students)
}

// GetCounselingLogs handles GET /api/admin/students/:id/logs.
func (s *Server) GetCounselingLogs(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return nil
	}

	logs, err := s.adminStore(c).ListLogs(c.UserContext(), studentID)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(logs)
}

// AddCounselingLog handles POST /api/admin/students/:id/logs. Logs are
// append-only; the counselor is always the session user.
func (s *Server) AddCounselingLog(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string         `json:"content"`
		Type    models.LogType `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	entry, err := s.adminStore(c).AddLog(c.UserContext(), studentID, req.Content, req.Type)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

package server

import (
	"waypoint/internal/models"
	"waypoint/internal/store"
	"waypoint/internal/validation"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) portfolioStore(c *fiber.Ctx) *store.PortfolioStore {
	return store.NewPortfolioStore(s.portfolioRepo, sessionFrom(c))
}

// GetPortfolioItems handles GET /api/portfolio.
func (s *Server) GetPortfolioItems(c *fiber.Ctx) error {
	items, err := s.portfolioStore(c).List(c.UserContext())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(items)
}

// CreatePortfolioItem handles POST /api/portfolio.
func (s *Server) CreatePortfolioItem(c *fiber.Ctx) error {
	var req models.PortfolioItem
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	created, err := s.portfolioStore(c).Create(c.UserContext(), req)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdatePortfolioItem handles PUT /api/portfolio/:id.
func (s *Server) UpdatePortfolioItem(c *fiber.Ctx) error {
	var req models.PortfolioUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return respondStoreError(c, err)
	}

	updated, err := s.portfolioStore(c).Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(updated)
}

// DeletePortfolioItem handles DELETE /api/portfolio/:id. Deleting a missing
// id succeeds.
func (s *Server) DeletePortfolioItem(c *fiber.Ctx) error {
	if err := s.portfolioStore(c).Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondStoreError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package server

import (
	"waypoint/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GetGuides handles GET /api/guides. A backing store failure degrades to an
// empty list so the rest of the client keeps working without templates.
func (s *Server) GetGuides(c *fiber.Ctx) error {
	guides := store.NewGuideStore(s.guideRepo).List(c.UserContext())
	return c.JSON(guides)
}

// GetGuide handles GET /api/guides/:id.
func (s *Server) GetGuide(c *fiber.Ctx) error {
	guide, err := store.NewGuideStore(s.guideRepo).Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(guide)
}

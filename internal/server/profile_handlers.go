package server

import (
	"fmt"
	"path/filepath"
	"strings"

	"waypoint/internal/models"
	"waypoint/internal/store"
	"waypoint/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedAvatarExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

func (s *Server) profileStore(c *fiber.Ctx) *store.ProfileStore {
	return store.NewProfileStore(s.profileRepo, sessionFrom(c))
}

// GetMyProfile handles GET /api/profile/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileStore(c).Get(c.UserContext())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/profile/me. Only the supplied fields are
// applied; role is immutable through this endpoint.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req models.ProfileUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return respondStoreError(c, err)
	}

	profile, err := s.profileStore(c).Update(c.UserContext(), req)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(profile)
}

// UploadAvatar handles POST /api/profile/me/avatar.
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	if sess == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewNotAuthenticatedError())
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("avatar file is required"))
	}

	maxBytes := int64(s.config.AvatarMaxUploadMB) * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return models.RespondWithError(c, fiber.StatusRequestEntityTooLarge,
			models.NewValidationError(fmt.Sprintf("avatar exceeds the %dMB limit", s.config.AvatarMaxUploadMB)))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedAvatarExtensions[ext]; !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("unsupported avatar file type"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer file.Close()

	name := fmt.Sprintf("%d-%s%s", sess.UserID, uuid.NewString(), ext)
	url, err := s.files.Save(c.UserContext(), name, file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	profile, err := s.profileStore(c).Update(c.UserContext(), models.ProfileUpdate{ProfileImage: &url})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(profile)
}

// GetDashboardStats handles GET /api/dashboard/stats.
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	stats := store.NewStatsStore(
		store.NewMilestoneStore(s.milestoneRepo, sess),
		store.NewDailyGoalStore(s.dailyRepo, sess),
		store.NewPortfolioStore(s.portfolioRepo, sess),
	)

	snapshot, err := stats.Snapshot(c.UserContext())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(snapshot)
}

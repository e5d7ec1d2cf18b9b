package store

import (
	"context"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/repository"
	"waypoint/internal/session"
	"waypoint/internal/wire"
)

// ProfileStore manages the authenticated user's single profile record.
type ProfileStore struct {
	repo repository.ProfileRepository
	sess *session.Session
}

// NewProfileStore returns a store scoped to the given session.
func NewProfileStore(repo repository.ProfileRepository, sess *session.Session) *ProfileStore {
	return &ProfileStore{repo: repo, sess: sess}
}

// Get returns the current user's profile.
func (s *ProfileStore) Get(ctx context.Context) (*models.UserProfile, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}

	row, err := s.repo.GetByUserID(ctx, s.sess.UserID)
	if err != nil {
		return nil, err
	}
	return wire.ProfileToDomain(row)
}

// Update applies only the supplied fields and returns the refreshed profile.
// Role is immutable and cannot appear in an update.
func (s *ProfileStore) Update(ctx context.Context, u models.ProfileUpdate) (*models.UserProfile, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "profile", "update")
	defer span.End()
	observability.RecordStoreOperation("profile", "update")

	affected, err := s.repo.UpdateFields(ctx, s.sess.UserID, wire.ProfileUpdates(u))
	if err != nil {
		span.SetError(err)
		observability.RecordStoreError("profile", models.CodePersistence)
		return nil, err
	}
	if affected == 0 {
		err := models.NewNotFoundError("Profile", s.sess.UserID)
		span.SetError(err)
		observability.RecordStoreError("profile", models.CodeNotFound)
		return nil, err
	}

	return s.Get(ctx)
}

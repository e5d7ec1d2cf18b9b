package store

import (
	"context"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/repository"
	"waypoint/internal/session"
	"waypoint/internal/wire"
)

// AdminStore exposes the counselor-scoped reads: all student profiles and
// per-student counseling logs. Log writes are append-only.
type AdminStore struct {
	profiles   repository.ProfileRepository
	counseling repository.CounselingRepository
	sess       *session.Session
}

// NewAdminStore returns a store scoped to the given session. Every operation
// requires the admin capability.
func NewAdminStore(profiles repository.ProfileRepository, counseling repository.CounselingRepository, sess *session.Session) *AdminStore {
	return &AdminStore{profiles: profiles, counseling: counseling, sess: sess}
}

func (s *AdminStore) guard() error {
	if s.sess == nil {
		return models.NewNotAuthenticatedError()
	}
	if !s.sess.IsAdmin() {
		return models.NewUnauthorizedError("Counselor access required")
	}
	return nil
}

// ListStudents returns every student profile.
func (s *AdminStore) ListStudents(ctx context.Context) ([]models.StudentRecord, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	students := make([]models.StudentRecord, 0, len(rows))
	for i := range rows {
		if rows[i].Role != string(models.RoleStudent) {
			continue
		}
		profile, err := wire.ProfileToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		students = append(students, models.StudentRecord{
			UserID:  rows[i].UserID,
			Profile: *profile,
		})
	}
	return students, nil
}

// ListLogs returns all counseling logs for a student, newest first.
func (s *AdminStore) ListLogs(ctx context.Context, studentID uint) ([]models.CounselingLog, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.counseling.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	logs := make([]models.CounselingLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, *wire.CounselingLogToDomain(&rows[i]))
	}
	return logs, nil
}

// AddLog appends a counseling log for a student. The counselor is always the
// session user; logs are never edited afterwards.
func (s *AdminStore) AddLog(ctx context.Context, studentID uint, content string, logType models.LogType) (*models.CounselingLog, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	span, ctx := observability.StartStoreSpan(ctx, "counseling_logs", "create")
	defer span.End()
	observability.RecordStoreOperation("counseling_logs", "create")

	if logType == "" {
		logType = models.LogRegular
	}
	entry := &models.CounselingLog{
		StudentID:   studentID,
		CounselorID: s.sess.UserID,
		Content:     content,
		Type:        logType,
	}

	row := wire.CounselingLogToRow(entry)
	if err := s.counseling.Create(ctx, row); err != nil {
		span.SetError(err)
		observability.RecordStoreError("counseling_logs", models.CodePersistence)
		return nil, err
	}
	entry.ID = row.ID
	entry.CreatedAt = row.CreatedAt
	return entry, nil
}

// Package session carries the authenticated identity through the data layer.
package session

import "waypoint/internal/models"

// Session is the identity resolved once at login. Stores accept a session to
// decide scope (own records vs. all records); nothing downstream re-derives
// the role.
type Session struct {
	UserID uint
	Email  string
	Role   models.Role
}

// IsAdmin reports whether the session carries the admin capability.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == models.RoleAdmin
}

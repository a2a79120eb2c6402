package domain

import (
	"time"

	"github.com/google/uuid"
)

// DashboardShare is a time-bounded permission grant from a dashboard owner
// to another user. ExpiresAt nil means the grant never expires. An expired
// grant is treated as absent for access purposes but is not deleted.
//
// Uniqueness per (dashboard, user) is not enforced; the access service
// resolves duplicates by taking the maximum active rank.
type DashboardShare struct {
	ID              uuid.UUID
	DashboardID     uuid.UUID
	UserID          uuid.UUID
	PermissionLevel PermissionLevel
	SharedBy        uuid.UUID
	SharedAt        time.Time
	ExpiresAt       *time.Time
}

// ActiveAt reports whether the grant confers access at the given instant.
func (s DashboardShare) ActiveAt(now time.Time) bool {
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

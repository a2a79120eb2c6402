package share

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// CreateShareInput holds the parameters for granting dashboard access.
// The permission level is always explicit; there is no implicit default.
type CreateShareInput struct {
	DashboardID     uuid.UUID
	UserID          uuid.UUID
	PermissionLevel domain.PermissionLevel
	ExpiresAt       *time.Time // nil = never expires
}

// Validate checks all fields and collects all errors.
func (i CreateShareInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.PermissionLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "permission_level", Message: "must be one of: view, edit, admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

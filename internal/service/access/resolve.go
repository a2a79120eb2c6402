package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// Resolve computes the user's effective permission on a dashboard.
//
// The dashboard must exist; a missing dashboard returns domain.ErrNotFound
// before any permission question is answered. The owner always resolves to
// admin regardless of any grants. Otherwise the effective level is the
// maximum rank across the user's active grants, and PermissionNone when
// there are none. Having no access is a resolution outcome, not an error.
func (s *Service) Resolve(ctx context.Context, dashboardID, userID uuid.UUID) (Resolution, error) {
	d, err := s.dashboards.GetByID(ctx, dashboardID)
	if err != nil {
		return Resolution{}, fmt.Errorf("get dashboard: %w", err)
	}

	if d.CreatedBy == userID {
		return Resolution{Level: domain.PermissionAdmin, IsOwner: true}, nil
	}

	grants, err := s.shares.ListActiveGrants(ctx, dashboardID, userID)
	if err != nil {
		return Resolution{}, fmt.Errorf("list grants: %w", err)
	}

	level := domain.PermissionNone
	for _, g := range grants {
		level = domain.MaxPermission(level, g.PermissionLevel)
	}

	return Resolution{Level: level}, nil
}

// Authorize resolves the user's permission and requires at least the given
// level. It returns domain.ErrForbidden when the effective rank is too low,
// including when the user has no access at all; domain.ErrNotFound from a
// missing dashboard takes precedence so a denied caller cannot distinguish
// a hidden dashboard from a missing one only by probing permissions.
func (s *Service) Authorize(ctx context.Context, dashboardID, userID uuid.UUID, required domain.PermissionLevel) (Resolution, error) {
	res, err := s.Resolve(ctx, dashboardID, userID)
	if err != nil {
		return Resolution{}, err
	}

	if !res.Level.AtLeast(required) {
		s.log.DebugContext(ctx, "permission denied",
			"dashboard_id", dashboardID.String(),
			"user_id", userID.String(),
			"required", required.String(),
			"effective", res.Level.String(),
		)
		return Resolution{}, fmt.Errorf("requires %s permission: %w", required, domain.ErrForbidden)
	}

	return res, nil
}

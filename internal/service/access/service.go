// Package access resolves a user's effective permission on a dashboard.
// Ownership short-circuits to admin; otherwise the effective level is the
// maximum rank across the user's active share grants. Resolution never
// writes and is safe to call from any other service.
package access

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

type dashboardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
}

type shareRepo interface {
	ListActiveGrants(ctx context.Context, dashboardID, userID uuid.UUID) ([]domain.DashboardShare, error)
}

// Service provides permission resolution and authorization checks.
type Service struct {
	dashboards dashboardRepo
	shares     shareRepo
	log        *slog.Logger
}

// NewService creates a new access service.
func NewService(log *slog.Logger, dashboards dashboardRepo, shares shareRepo) *Service {
	return &Service{
		dashboards: dashboards,
		shares:     shares,
		log:        log.With("service", "access"),
	}
}

// Resolution is the outcome of resolving a user against a dashboard.
type Resolution struct {
	Level   domain.PermissionLevel
	IsOwner bool
}

// Label returns the permission label exposed on the API: "owner" for the
// dashboard owner, the level string for grant holders, "" for no access.
func (r Resolution) Label() string {
	if r.IsOwner {
		return domain.PermissionLabelOwner
	}
	return r.Level.String()
}

package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// UpdateLayout updates a single layout. Requires edit permission on the
// owning dashboard. A supplied layout config replaces the stored placement
// wholesale; creation is the only point where configs merge over defaults.
// Bumps the dashboard version.
func (s *Service) UpdateLayout(ctx context.Context, input UpdateLayoutInput) (*domain.DashboardLayout, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.layouts.GetByID(ctx, input.LayoutID)
	if err != nil {
		return nil, fmt.Errorf("get layout: %w", err)
	}

	if _, err := s.access.Authorize(ctx, existing.DashboardID, userID, domain.PermissionEdit); err != nil {
		return nil, err
	}

	updated, err := s.layouts.Update(ctx, input.LayoutID, domain.LayoutUpdateParams{
		LayoutConfig:   input.LayoutConfig,
		InstanceConfig: input.InstanceConfig,
		DisplayOrder:   input.DisplayOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("update layout: %w", err)
	}

	version := s.bumpVersion(ctx, existing.DashboardID)

	s.log.InfoContext(ctx, "layout updated",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", existing.DashboardID.String()),
		slog.String("layout_id", input.LayoutID.String()),
		slog.Int("version", version),
	)

	return updated, nil
}

package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// RemoveLayout removes a widget placement from its dashboard. Requires
// edit permission. Bumps the dashboard version.
func (s *Service) RemoveLayout(ctx context.Context, layoutID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.layouts.GetByID(ctx, layoutID)
	if err != nil {
		return fmt.Errorf("get layout: %w", err)
	}

	if _, err := s.access.Authorize(ctx, existing.DashboardID, userID, domain.PermissionEdit); err != nil {
		return err
	}

	if err := s.layouts.Delete(ctx, layoutID); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}

	version := s.bumpVersion(ctx, existing.DashboardID)

	s.log.InfoContext(ctx, "layout removed",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", existing.DashboardID.String()),
		slog.String("layout_id", layoutID.String()),
		slog.Int("version", version),
	)

	return nil
}

package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// DeleteDashboard removes a dashboard together with its layouts and share
// grants in one transaction. Only the owner or a platform admin may delete;
// a share grant at admin rank is not enough to destroy someone else's
// dashboard.
func (s *Service) DeleteDashboard(ctx context.Context, dashboardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	res, err := s.access.Resolve(ctx, dashboardID, userID)
	if err != nil {
		return err
	}
	if !res.IsOwner && !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("only the owner may delete a dashboard: %w", domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.layouts.DeleteByDashboard(txCtx, dashboardID); err != nil {
			return fmt.Errorf("delete layouts: %w", err)
		}
		if err := s.shares.DeleteByDashboard(txCtx, dashboardID); err != nil {
			return fmt.Errorf("delete shares: %w", err)
		}
		if err := s.dashboards.Delete(txCtx, dashboardID); err != nil {
			return fmt.Errorf("delete dashboard: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "dashboard deleted",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", dashboardID.String()),
	)

	return nil
}

package share

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// RevokeShare removes every grant the target user holds on the dashboard.
// Only the owner or a platform admin may revoke.
func (s *Service) RevokeShare(ctx context.Context, dashboardID, targetUserID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.requireManager(ctx, dashboardID, userID); err != nil {
		return err
	}

	if err := s.shares.Revoke(ctx, dashboardID, targetUserID); err != nil {
		return fmt.Errorf("revoke share: %w", err)
	}

	s.log.InfoContext(ctx, "share revoked",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", dashboardID.String()),
		slog.String("grantee_id", targetUserID.String()),
	)

	return nil
}

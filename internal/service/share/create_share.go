package share

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// CreateShare grants a user time-bounded access to a dashboard. Only the
// owner or a platform admin may grant. Duplicate grants for the same user
// are allowed; resolution takes the maximum active rank.
func (s *Service) CreateShare(ctx context.Context, input CreateShareInput) (*domain.DashboardShare, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireManager(ctx, input.DashboardID, userID); err != nil {
		return nil, err
	}

	created, err := s.shares.Create(ctx, &domain.DashboardShare{
		DashboardID:     input.DashboardID,
		UserID:          input.UserID,
		PermissionLevel: input.PermissionLevel,
		SharedBy:        userID,
		ExpiresAt:       input.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create share: %w", err)
	}

	s.log.InfoContext(ctx, "share created",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", input.DashboardID.String()),
		slog.String("grantee_id", input.UserID.String()),
		slog.String("level", input.PermissionLevel.String()),
	)

	return created, nil
}

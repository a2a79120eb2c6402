package widget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// CreateType registers a widget type in the platform catalog. Restricted
// to platform admins; type names are unique.
func (s *Service) CreateType(ctx context.Context, input CreateTypeInput) (*domain.WidgetType, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("widget types are managed by admins: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.widgets.CreateType(ctx, &domain.WidgetType{
		Name:          input.Name,
		ComponentName: input.ComponentName,
		DefaultConfig: input.DefaultConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("create widget type: %w", err)
	}

	s.log.InfoContext(ctx, "widget type created",
		slog.String("user_id", userID.String()),
		slog.String("type_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// GetType returns a widget type by id.
func (s *Service) GetType(ctx context.Context, typeID uuid.UUID) (*domain.WidgetType, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.widgets.GetTypeByID(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("get widget type: %w", err)
	}

	return t, nil
}

// ListTypes returns the whole type catalog.
func (s *Service) ListTypes(ctx context.Context) ([]domain.WidgetType, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	types, err := s.widgets.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list widget types: %w", err)
	}

	return types, nil
}

// UpdateType updates a widget type. Restricted to platform admins.
func (s *Service) UpdateType(ctx context.Context, input UpdateTypeInput) (*domain.WidgetType, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("widget types are managed by admins: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.widgets.UpdateType(ctx, input.TypeID, domain.WidgetTypeUpdateParams{
		Name:          input.Name,
		ComponentName: input.ComponentName,
		DefaultConfig: input.DefaultConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("update widget type: %w", err)
	}

	return updated, nil
}

// DeleteType removes a widget type. Restricted to platform admins; a type
// still referenced by definitions fails with a conflict.
func (s *Service) DeleteType(ctx context.Context, typeID uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("widget types are managed by admins: %w", domain.ErrForbidden)
	}

	if err := s.widgets.DeleteType(ctx, typeID); err != nil {
		return fmt.Errorf("delete widget type: %w", err)
	}

	return nil
}

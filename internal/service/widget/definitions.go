package widget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// CreateDefinition creates a widget definition owned by the caller. The
// referenced widget type must exist.
func (s *Service) CreateDefinition(ctx context.Context, input CreateDefinitionInput) (*domain.WidgetDefinition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.widgets.CreateDefinition(ctx, &domain.WidgetDefinition{
		Name:             strings.TrimSpace(input.Name),
		Description:      input.Description,
		WidgetTypeID:     input.WidgetTypeID,
		DataSourceConfig: input.DataSourceConfig,
		LayoutConfig:     input.LayoutConfig,
		CreatedBy:        userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create widget definition: %w", err)
	}

	s.log.InfoContext(ctx, "widget definition created",
		slog.String("user_id", userID.String()),
		slog.String("definition_id", created.ID.String()),
	)

	return created, nil
}

// GetDefinition returns a widget definition by id.
func (s *Service) GetDefinition(ctx context.Context, definitionID uuid.UUID) (*domain.WidgetDefinition, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.widgets.GetDefinitionByID(ctx, definitionID)
	if err != nil {
		return nil, fmt.Errorf("get widget definition: %w", err)
	}

	return d, nil
}

// ListDefinitions returns definitions matching the filter.
func (s *Service) ListDefinitions(ctx context.Context, filter domain.WidgetDefinitionFilter) ([]domain.WidgetDefinition, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	defs, err := s.widgets.ListDefinitions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list widget definitions: %w", err)
	}

	return defs, nil
}

// UpdateDefinition updates a widget definition. Only the creator or a
// platform admin may modify it.
func (s *Service) UpdateDefinition(ctx context.Context, input UpdateDefinitionInput) (*domain.WidgetDefinition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireDefinitionOwner(ctx, input.DefinitionID, userID); err != nil {
		return nil, err
	}

	updated, err := s.widgets.UpdateDefinition(ctx, input.DefinitionID, domain.WidgetDefinitionUpdateParams{
		Name:             input.Name,
		Description:      input.Description,
		DataSourceConfig: input.DataSourceConfig,
		LayoutConfig:     input.LayoutConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("update widget definition: %w", err)
	}

	return updated, nil
}

// DeleteDefinition removes a widget definition. Only the creator or a
// platform admin may delete it; a definition still placed on a dashboard
// fails with a conflict.
func (s *Service) DeleteDefinition(ctx context.Context, definitionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.requireDefinitionOwner(ctx, definitionID, userID); err != nil {
		return err
	}

	if err := s.widgets.DeleteDefinition(ctx, definitionID); err != nil {
		return fmt.Errorf("delete widget definition: %w", err)
	}

	s.log.InfoContext(ctx, "widget definition deleted",
		slog.String("user_id", userID.String()),
		slog.String("definition_id", definitionID.String()),
	)

	return nil
}

func (s *Service) requireDefinitionOwner(ctx context.Context, definitionID, userID uuid.UUID) error {
	existing, err := s.widgets.GetDefinitionByID(ctx, definitionID)
	if err != nil {
		return fmt.Errorf("get widget definition: %w", err)
	}
	if existing.CreatedBy != userID && !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("only the creator may modify a widget definition: %w", domain.ErrForbidden)
	}
	return nil
}

package layout

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// AddWidgetInput holds the parameters for placing a widget on a dashboard.
type AddWidgetInput struct {
	DashboardID        uuid.UUID
	WidgetDefinitionID uuid.UUID
	LayoutConfig       *domain.LayoutConfigPatch // nil or partial: merged over defaults
	InstanceConfig     map[string]any
	DisplayOrder       *int // nil = append after existing widgets
}

// Validate checks all fields and collects all errors.
func (i AddWidgetInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}
	if i.WidgetDefinitionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "widget_definition_id", Message: "required"})
	}
	if i.DisplayOrder != nil && *i.DisplayOrder < 0 {
		errs = append(errs, domain.FieldError{Field: "display_order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLayoutInput holds the parameters for updating a single layout.
// A supplied LayoutConfig replaces the stored placement wholesale.
type UpdateLayoutInput struct {
	LayoutID       uuid.UUID
	LayoutConfig   *domain.LayoutConfig
	InstanceConfig map[string]any
	DisplayOrder   *int
}

// Validate checks all fields and collects all errors.
func (i UpdateLayoutInput) Validate() error {
	var errs []domain.FieldError

	if i.LayoutID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "layout_id", Message: "required"})
	}
	if i.LayoutConfig == nil && i.InstanceConfig == nil && i.DisplayOrder == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.DisplayOrder != nil && *i.DisplayOrder < 0 {
		errs = append(errs, domain.FieldError{Field: "display_order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkRepositionInput holds the parameters for an atomic batch of placement
// updates against one dashboard.
type BulkRepositionInput struct {
	DashboardID uuid.UUID
	Entries     []domain.LayoutBatchEntry
}

// Validate checks all fields and collects all errors. The batch size bound
// is checked in the operation because it is a configured limit.
func (i BulkRepositionInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}
	if len(i.Entries) == 0 {
		errs = append(errs, domain.FieldError{Field: "layouts", Message: "required"})
	}
	for idx, e := range i.Entries {
		if e.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "layouts", Message: fmt.Sprintf("id required at index %d", idx)})
		}
		if e.DisplayOrder != nil && *e.DisplayOrder < 0 {
			errs = append(errs, domain.FieldError{Field: "layouts", Message: fmt.Sprintf("display_order must not be negative at index %d", idx)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

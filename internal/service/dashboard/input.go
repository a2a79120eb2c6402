package dashboard

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// InitialWidget is one widget placed at dashboard creation time. A partial
// layout config merges over the default placement; display order is the
// position in the widgets array.
type InitialWidget struct {
	WidgetDefinitionID uuid.UUID
	LayoutConfig       *domain.LayoutConfigPatch
	InstanceConfig     map[string]any
}

// CreateDashboardInput holds the parameters for creating a dashboard.
type CreateDashboardInput struct {
	Name        string
	Description *string
	GridConfig  *domain.GridConfig
	Widgets     []InitialWidget
}

// Validate checks all fields and collects all errors.
func (i CreateDashboardInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	for idx, w := range i.Widgets {
		if w.WidgetDefinitionID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "widgets", Message: "widget_definition_id required at index " + strconv.Itoa(idx)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDashboardInput holds the parameters for a metadata update. Only the
// allow-listed fields appear here; version and created_by are never
// client-writable.
type UpdateDashboardInput struct {
	DashboardID uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	IsActive    *bool
	GridConfig  *domain.GridConfig
}

// Validate checks all fields and collects all errors.
func (i UpdateDashboardInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.IsActive == nil && i.GridConfig == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DuplicateDashboardInput holds the parameters for duplicating a dashboard.
type DuplicateDashboardInput struct {
	DashboardID uuid.UUID
	Name        *string // nil = "<source name> (Copy)"
}

// Validate checks all fields and collects all errors.
func (i DuplicateDashboardInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

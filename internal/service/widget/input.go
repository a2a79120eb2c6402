package widget

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// CreateTypeInput holds the parameters for registering a widget type.
type CreateTypeInput struct {
	Name          string
	ComponentName string
	DefaultConfig map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateTypeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if strings.TrimSpace(i.ComponentName) == "" {
		errs = append(errs, domain.FieldError{Field: "component_name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTypeInput holds the parameters for updating a widget type.
type UpdateTypeInput struct {
	TypeID        uuid.UUID
	Name          *string
	ComponentName *string
	DefaultConfig map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateTypeInput) Validate() error {
	var errs []domain.FieldError

	if i.TypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}
	if i.Name == nil && i.ComponentName == nil && i.DefaultConfig == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.ComponentName != nil && strings.TrimSpace(*i.ComponentName) == "" {
		errs = append(errs, domain.FieldError{Field: "component_name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateDefinitionInput holds the parameters for creating a widget
// definition.
type CreateDefinitionInput struct {
	Name             string
	Description      *string
	WidgetTypeID     uuid.UUID
	DataSourceConfig map[string]any
	LayoutConfig     map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateDefinitionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if i.WidgetTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "widget_type_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDefinitionInput holds the parameters for updating a widget
// definition.
type UpdateDefinitionInput struct {
	DefinitionID     uuid.UUID
	Name             *string
	Description      *string
	DataSourceConfig map[string]any
	LayoutConfig     map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateDefinitionInput) Validate() error {
	var errs []domain.FieldError

	if i.DefinitionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "definition_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.DataSourceConfig == nil && i.LayoutConfig == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// WidgetType is a catalog entry describing a renderable widget: its unique
// name, the frontend component that renders it, and its default
// configuration. Types are effectively immutable once referenced.
type WidgetType struct {
	ID            uuid.UUID
	Name          string
	ComponentName string
	DefaultConfig map[string]any
	CreatedAt     time.Time
}

// WidgetDefinition is a named, configured instance of a widget type (data
// source wiring), reusable across placements on any dashboard.
type WidgetDefinition struct {
	ID               uuid.UUID
	Name             string
	Description      *string
	WidgetTypeID     uuid.UUID
	DataSourceConfig map[string]any
	LayoutConfig     map[string]any
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WidgetTypeUpdateParams is the allow-list for widget type updates.
type WidgetTypeUpdateParams struct {
	Name          *string
	ComponentName *string
	DefaultConfig map[string]any
}

// Empty reports whether no allow-listed field was supplied.
func (p WidgetTypeUpdateParams) Empty() bool {
	return p.Name == nil && p.ComponentName == nil && p.DefaultConfig == nil
}

// WidgetDefinitionUpdateParams is the allow-list for widget definition updates.
type WidgetDefinitionUpdateParams struct {
	Name             *string
	Description      *string
	WidgetTypeID     *uuid.UUID
	DataSourceConfig map[string]any
	LayoutConfig     map[string]any
}

// Empty reports whether no allow-listed field was supplied.
func (p WidgetDefinitionUpdateParams) Empty() bool {
	return p.Name == nil && p.Description == nil && p.WidgetTypeID == nil &&
		p.DataSourceConfig == nil && p.LayoutConfig == nil
}

// WidgetDefinitionFilter narrows definition listings.
type WidgetDefinitionFilter struct {
	CreatedBy    *uuid.UUID
	WidgetTypeID *uuid.UUID
}

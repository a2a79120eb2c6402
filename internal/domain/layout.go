package domain

import (
	"time"

	"github.com/google/uuid"
)

// DashboardLayout is one widget's placement on a dashboard's grid plus its
// per-instance configuration override.
type DashboardLayout struct {
	ID                 uuid.UUID
	DashboardID        uuid.UUID
	WidgetDefinitionID uuid.UUID
	LayoutConfig       LayoutConfig
	InstanceConfig     map[string]any
	DisplayOrder       int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LayoutConfig is a placement's grid geometry.
type LayoutConfig struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	W      int  `json:"w"`
	H      int  `json:"h"`
	MinW   int  `json:"minW"`
	MinH   int  `json:"minH"`
	Static bool `json:"static"`
}

// DefaultLayoutConfig returns the hard default geometry new placements
// merge over.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{X: 0, Y: 0, W: 4, H: 2, MinW: 2, MinH: 1, Static: false}
}

// LayoutConfigPatch is the optional-field form of LayoutConfig used only at
// placement creation. Set fields override the default for that single key;
// unset fields keep the default.
type LayoutConfigPatch struct {
	X      *int  `json:"x"`
	Y      *int  `json:"y"`
	W      *int  `json:"w"`
	H      *int  `json:"h"`
	MinW   *int  `json:"minW"`
	MinH   *int  `json:"minH"`
	Static *bool `json:"static"`
}

// MergeOverDefault shallow-merges the patch over DefaultLayoutConfig.
// This merge exists only on the create path; update and bulk-update replace
// the stored config wholesale.
func (p LayoutConfigPatch) MergeOverDefault() LayoutConfig {
	cfg := DefaultLayoutConfig()
	if p.X != nil {
		cfg.X = *p.X
	}
	if p.Y != nil {
		cfg.Y = *p.Y
	}
	if p.W != nil {
		cfg.W = *p.W
	}
	if p.H != nil {
		cfg.H = *p.H
	}
	if p.MinW != nil {
		cfg.MinW = *p.MinW
	}
	if p.MinH != nil {
		cfg.MinH = *p.MinH
	}
	if p.Static != nil {
		cfg.Static = *p.Static
	}
	return cfg
}

// LayoutUpdateParams is the allow-list for single-placement updates.
// LayoutConfig and InstanceConfig are replaced wholesale when present.
type LayoutUpdateParams struct {
	LayoutConfig   *LayoutConfig
	InstanceConfig map[string]any // nil = not supplied
	DisplayOrder   *int
}

// Empty reports whether no allow-listed field was supplied.
func (p LayoutUpdateParams) Empty() bool {
	return p.LayoutConfig == nil && p.InstanceConfig == nil && p.DisplayOrder == nil
}

// LayoutBatchEntry is one row of a bulk reposition. LayoutConfig must be the
// complete replacement object; InstanceConfig and DisplayOrder keep the
// stored value when absent.
type LayoutBatchEntry struct {
	ID             uuid.UUID
	LayoutConfig   LayoutConfig
	InstanceConfig map[string]any // nil = keep stored value
	DisplayOrder   *int           // nil = keep stored value
}

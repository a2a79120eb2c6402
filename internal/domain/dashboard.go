package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard is a named, owned collection of widget placements plus grid
// configuration and a structural version counter.
//
// CreatedBy never changes after creation. Version starts at 1 and only
// increases; it is bumped by structural layout mutations (see the layout
// service), never by metadata updates.
type Dashboard struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Version     int
	IsActive    bool
	GridConfig  GridConfig
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GridBreakpoints holds the pixel thresholds at which the grid reflows.
type GridBreakpoints struct {
	LG  int `json:"lg"`
	MD  int `json:"md"`
	SM  int `json:"sm"`
	XS  int `json:"xs"`
	XXS int `json:"xxs"`
}

// GridConfig is the dashboard-level grid geometry. Key order in the stored
// jsonb is not significant; only values are.
type GridConfig struct {
	Cols             int             `json:"cols"`
	RowHeight        int             `json:"rowHeight"`
	Margin           [2]int          `json:"margin"`
	Breakpoints      GridBreakpoints `json:"breakpoints"`
	ContainerPadding [2]int          `json:"containerPadding"`
}

// DefaultGridConfig returns the grid configuration stored when a dashboard
// is created without one.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Cols:             12,
		RowHeight:        100,
		Margin:           [2]int{10, 10},
		Breakpoints:      GridBreakpoints{LG: 1200, MD: 996, SM: 768, XS: 480, XXS: 0},
		ContainerPadding: [2]int{10, 10},
	}
}

// DashboardUpdateParams is the allow-list for metadata updates. nil fields
// are left unchanged; anything outside this set is ignored upstream.
type DashboardUpdateParams struct {
	Name        *string
	Description *string // ptr("") clears
	Version     *int
	IsActive    *bool
	GridConfig  *GridConfig
}

// Empty reports whether no allow-listed field was supplied.
func (p DashboardUpdateParams) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Version == nil &&
		p.IsActive == nil && p.GridConfig == nil
}

// DashboardWithPermission is a listing row: the dashboard plus the label
// under which the requesting user sees it ("owner" or the share rank).
type DashboardWithPermission struct {
	Dashboard
	Permission string
}

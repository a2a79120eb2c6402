package domain

// PermissionLevel is the ordered rank a user holds on a dashboard.
// The zero value PermissionNone means no access.
type PermissionLevel string

const (
	PermissionNone  PermissionLevel = ""
	PermissionView  PermissionLevel = "view"
	PermissionEdit  PermissionLevel = "edit"
	PermissionAdmin PermissionLevel = "admin"
)

// PermissionLabelOwner is the label attached to dashboards resolved through
// ownership rather than a share grant.
const PermissionLabelOwner = "owner"

func (p PermissionLevel) String() string { return string(p) }

func (p PermissionLevel) IsValid() bool {
	switch p {
	case PermissionView, PermissionEdit, PermissionAdmin:
		return true
	}
	return false
}

// Rank returns the total order used by both resolution and authorization:
// view=1 < edit=2 < admin=3. Unknown levels (including PermissionNone) rank 0.
func (p PermissionLevel) Rank() int {
	switch p {
	case PermissionView:
		return 1
	case PermissionEdit:
		return 2
	case PermissionAdmin:
		return 3
	}
	return 0
}

// AtLeast reports whether p grants everything required does.
func (p PermissionLevel) AtLeast(required PermissionLevel) bool {
	return p.Rank() >= required.Rank()
}

// MaxPermission returns the higher-ranked of two levels.
func MaxPermission(a, b PermissionLevel) PermissionLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

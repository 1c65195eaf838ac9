package gate

import "strings"

// Action describes the kind of operation a subject wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// Permission is an allowed action on a resource type, written
// "resource:action" (e.g. "property:create", "invoice:view").
type Permission string

// NewPermission builds a permission from a resource type and an action.
func NewPermission(resourceType string, action Action) Permission {
	return Permission(resourceType + ":" + string(action))
}

// Parse splits a permission into its resource type and action.
// A malformed permission parses to two empty parts and matches nothing.
func (p Permission) Parse() (resourceType string, action Action) {
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], Action(parts[1])
}

// Wildcards for elevated permissions.
const (
	WildcardAll                     = "*"
	PermissionSuperAdmin Permission = "*:*"
)

// Matches reports whether this permission grants the requested one.
// "*:*" grants everything; "payment:*" grants every payment action.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionSuperAdmin {
		return true
	}
	if p == requested {
		return true
	}
	res, act := p.Parse()
	reqRes, _ := requested.Parse()
	return res != "" && res == reqRes && string(act) == WildcardAll
}

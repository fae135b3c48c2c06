package model

import (
	"fmt"
	"strings"

	"coursedesk_backend/internals/constants"
)

// NormalizeRoles maps an incoming roles list onto the canonical section list.
// Every known section appears exactly once, in canonical order; sections
// missing from the input default to no permission. Unknown names are an error.
func NormalizeRoles(in []UserRole) ([]UserRole, error) {
	granted := make(map[string]bool, len(in))
	for _, r := range in {
		name := strings.TrimSpace(r.Name)
		if !constants.IsKnownSection(name) {
			return nil, fmt.Errorf("unknown role %q", r.Name)
		}
		granted[name] = granted[name] || r.Actions.Permission
	}

	out := DefaultRoles()
	for i := range out {
		out[i].Actions.Permission = granted[out[i].Name]
	}
	return out, nil
}

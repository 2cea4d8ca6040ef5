// Package util provides utility functions for the application.
package util

import "strings"

// SanitizeTenantName derives a safe partition identifier component from a
// tenant name: trimmed, lowercased, with every character outside [a-z0-9_-]
// replaced by an underscore. This function is the join key between the
// tenant registry and the per-tenant partitions, so it must stay
// deterministic. Use it whenever accepting tenant names from external sources.
func SanitizeTenantName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// CollectionNameForTenant returns the name of the tenant's partition
// collection in the shared store.
func CollectionNameForTenant(name string) string {
	return "org_" + SanitizeTenantName(name)
}

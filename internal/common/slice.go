//nolint:revive // var-naming: package name "common" is intentional for shared internal utilities
package common

import "slices"

// CloneOrEmpty returns a copy of the slice or an empty slice if nil.
// Downstream code (serialization, export) relies on list fields never
// being nil.
func CloneOrEmpty(slice []string) []string {
	if slice == nil {
		return []string{}
	}
	return slices.Clone(slice)
}

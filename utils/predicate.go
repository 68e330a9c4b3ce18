// Package utils holds small generic helpers shared by the runtime packages.
package utils

import "cmp"

// IsInRange reports whether lo <= value <= hi.
func IsInRange[T cmp.Ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

package reconcile

import (
	"errors"
	"fmt"
)

// ErrDuplicateOrdinal reports two matches resolving to the same flight
// number. It is fatal for the whole run: no updates may be submitted.
var ErrDuplicateOrdinal = errors.New("duplicate flight number")

// AssignOrdinals computes one flight number per match: the base ordinal plus
// the matched row's position in the original manifest order. The base is one
// greater than the highest flight number among already-flown launches, so
// matched rows continue the historical numbering in manifest order.
//
// The returned slice is parallel to matches. If any two matches collide on
// the same flight number the whole assignment fails with
// ErrDuplicateOrdinal.
func AssignOrdinals(base int, matches []Match) ([]int, error) {
	ordinals := make([]int, len(matches))
	byOrdinal := make(map[int]string, len(matches))

	for i, m := range matches {
		ordinal := base + m.Row.Position
		if prev, dup := byOrdinal[ordinal]; dup {
			return nil, fmt.Errorf("%w: %d assigned to both %q and %q",
				ErrDuplicateOrdinal, ordinal, prev, m.PayloadID)
		}
		byOrdinal[ordinal] = m.PayloadID
		ordinals[i] = ordinal
	}

	return ordinals, nil
}

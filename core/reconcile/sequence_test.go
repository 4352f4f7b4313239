package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignOrdinals_ContiguousFromBase(t *testing.T) {
	matches := []Match{
		{PayloadID: "A", Row: ManifestRow{Position: 0}},
		{PayloadID: "B", Row: ManifestRow{Position: 1}},
		{PayloadID: "C", Row: ManifestRow{Position: 2}},
	}

	ordinals, err := AssignOrdinals(50, matches)
	assert.NoError(t, err)
	assert.Equal(t, []int{50, 51, 52}, ordinals)
}

// Ordinals follow the manifest position of the matched row, not the order
// the matches were produced in.
func TestAssignOrdinals_ManifestPositionWins(t *testing.T) {
	matches := []Match{
		{PayloadID: "B", Row: ManifestRow{Position: 3}},
		{PayloadID: "A", Row: ManifestRow{Position: 1}},
	}

	ordinals, err := AssignOrdinals(88, matches)
	assert.NoError(t, err)
	assert.Equal(t, []int{91, 89}, ordinals)
}

func TestAssignOrdinals_DuplicateIsFatal(t *testing.T) {
	// Two internal records matched the same manifest row, so both resolve
	// to the same flight number.
	matches := []Match{
		{PayloadID: "A", Row: ManifestRow{Position: 0}},
		{PayloadID: "B", Row: ManifestRow{Position: 0}},
	}

	ordinals, err := AssignOrdinals(50, matches)
	assert.ErrorIs(t, err, ErrDuplicateOrdinal)
	assert.Nil(t, ordinals)
}

func TestAssignOrdinals_Empty(t *testing.T) {
	ordinals, err := AssignOrdinals(10, nil)
	assert.NoError(t, err)
	assert.Empty(t, ordinals)
}

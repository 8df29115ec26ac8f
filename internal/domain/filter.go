package domain

import "time"

// Listing limits shared by the mood and gratitude history endpoints.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ClampLimit applies DefaultListLimit to non-positive values and caps the
// result at MaxListLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}

// MoodEntryFilter narrows a listing of a user's entries.
// From is inclusive, To is exclusive.
type MoodEntryFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

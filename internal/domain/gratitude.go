package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxGratitudeItems is how many things a single journal entry can list.
const MaxGratitudeItems = 3

// GratitudeEntry is one journal entry of up to three items.
type GratitudeEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []string
	CreatedAt time.Time
}

// CleanGratitudeItems trims each item and drops the blank ones,
// preserving order.
func CleanGratitudeItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

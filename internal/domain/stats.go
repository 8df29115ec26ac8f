package domain

import (
	"math"
	"time"
)

// MoodDistribution counts mood entries per category. Every selectable
// category and MoodUnknown are always present.
type MoodDistribution map[MoodCategory]int

// NewMoodDistribution folds raw stored values and their counts into a
// distribution. Values outside the category set land in MoodUnknown.
func NewMoodDistribution(raw map[string]int) MoodDistribution {
	d := make(MoodDistribution, len(MoodCategories)+1)
	for _, c := range MoodCategories {
		d[c] = 0
	}
	d[MoodUnknown] = 0

	for value, n := range raw {
		d[ParseMoodCategory(value)] += n
	}
	return d
}

// Total returns the sum of all buckets.
func (d MoodDistribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// AdminStats is the anonymous system-wide report shown to admins.
type AdminStats struct {
	TotalUsers            int
	TotalMoodEntries      int
	MoodDistribution      MoodDistribution
	AverageEntriesPerUser float64
	GeneratedAt           time.Time
}

// NewAdminStats assembles a report from server-side counts.
func NewAdminStats(totalUsers, totalEntries int, dist MoodDistribution, now time.Time) AdminStats {
	return AdminStats{
		TotalUsers:            totalUsers,
		TotalMoodEntries:      totalEntries,
		MoodDistribution:      dist,
		AverageEntriesPerUser: AverageEntriesPerUser(totalEntries, totalUsers),
		GeneratedAt:           now,
	}
}

// AverageEntriesPerUser returns entries/users rounded to one decimal place,
// or 0 when there are no users.
func AverageEntriesPerUser(entries, users int) float64 {
	if users <= 0 {
		return 0
	}
	return RoundOneDecimal(float64(entries) / float64(users))
}

// RoundOneDecimal rounds f half away from zero to one decimal place.
func RoundOneDecimal(f float64) float64 {
	return math.Round(f*10) / 10
}

package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// MoodCategory is the emotional state a user selects when logging an entry.
type MoodCategory string

const (
	MoodHappy    MoodCategory = "Happy"
	MoodNeutral  MoodCategory = "Neutral"
	MoodSad      MoodCategory = "Sad"
	MoodAnxious  MoodCategory = "Anxious"
	MoodStressed MoodCategory = "Stressed"

	// MoodUnknown is the read-side bucket for stored values outside the
	// fixed set. It is never accepted on write.
	MoodUnknown MoodCategory = "Unknown"
)

// UnknownMoodScore is the trend score of an entry whose category is MoodUnknown.
const UnknownMoodScore = 0

// MoodCategories lists the selectable categories in display order.
var MoodCategories = []MoodCategory{MoodHappy, MoodNeutral, MoodSad, MoodAnxious, MoodStressed}

var moodScores = map[MoodCategory]int{
	MoodHappy:    5,
	MoodNeutral:  4,
	MoodStressed: 3,
	MoodAnxious:  2,
	MoodSad:      1,
}

func (c MoodCategory) String() string { return string(c) }

// IsValid reports whether c is one of the selectable categories.
func (c MoodCategory) IsValid() bool {
	_, ok := moodScores[c]
	return ok
}

// Score maps the category to its trend score (Happy=5 … Sad=1).
// An unrecognized category scores UnknownMoodScore.
func (c MoodCategory) Score() int {
	if s, ok := moodScores[c]; ok {
		return s
	}
	return UnknownMoodScore
}

// ParseMoodCategory maps a stored or submitted value onto the category set.
// Matching ignores case, surrounding whitespace and anything after the
// leading word, so legacy values such as "Happy 😀" resolve to MoodHappy.
// Anything else resolves to MoodUnknown.
func ParseMoodCategory(raw string) MoodCategory {
	word := strings.TrimSpace(raw)
	if i := strings.IndexFunc(word, func(r rune) bool { return !unicode.IsLetter(r) }); i >= 0 {
		word = word[:i]
	}
	for _, c := range MoodCategories {
		if strings.EqualFold(word, string(c)) {
			return c
		}
	}
	return MoodUnknown
}

// ParseSubmittedMood resolves a mood submitted for a new entry. The trimmed
// value must be a category name, case-insensitive, optionally followed by
// whitespace and an emoji-only suffix ("Happy 😀"). Anything else is rejected.
func ParseSubmittedMood(raw string) (MoodCategory, bool) {
	s := strings.TrimSpace(raw)

	word, suffix := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		word, suffix = s[:i], s[i:]
	}

	for _, r := range suffix {
		if !unicode.IsSpace(r) && !isEmojiRune(r) {
			return "", false
		}
	}

	for _, c := range MoodCategories {
		if strings.EqualFold(word, string(c)) {
			return c, true
		}
	}
	return "", false
}

// isEmojiRune covers pictographs, modifiers, variation selectors and the
// zero-width joiner used in emoji sequences.
func isEmojiRune(r rune) bool {
	return unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r) ||
		unicode.Is(unicode.Mn, r) || r == '\u200d'
}

// MoodEntry is one immutable mood log record.
type MoodEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Mood           MoodCategory
	Note           string
	IdempotencyKey *string
	CreatedAt      time.Time
}

// TrendLabelLayout formats trend labels as short month and day, e.g. "Oct 10".
const TrendLabelLayout = "Jan 2"

// TrendPoint is one plotted mood entry.
type TrendPoint struct {
	Label string
	Score int
	Mood  MoodCategory
	At    time.Time
}

// MoodTrend holds parallel label/score series of equal length, in entry order.
type MoodTrend struct {
	Labels []string
	Scores []int
	Points []TrendPoint
}

// BuildMoodTrend turns chronologically ordered entries into a trend series.
// Labels are rendered in loc. Zero entries yield empty, non-nil series.
func BuildMoodTrend(entries []MoodEntry, loc *time.Location) MoodTrend {
	if loc == nil {
		loc = time.UTC
	}

	trend := MoodTrend{
		Labels: make([]string, 0, len(entries)),
		Scores: make([]int, 0, len(entries)),
		Points: make([]TrendPoint, 0, len(entries)),
	}

	for _, e := range entries {
		label := e.CreatedAt.In(loc).Format(TrendLabelLayout)
		score := e.Mood.Score()

		trend.Labels = append(trend.Labels, label)
		trend.Scores = append(trend.Scores, score)
		trend.Points = append(trend.Points, TrendPoint{
			Label: label,
			Score: score,
			Mood:  e.Mood,
			At:    e.CreatedAt,
		})
	}

	return trend
}

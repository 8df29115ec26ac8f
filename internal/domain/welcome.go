package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// WellnessQuotes rotate once per day on the welcome banner.
var WellnessQuotes = []string{
	"Your mind is a garden. Your thoughts are the seeds. You can grow flowers or you can grow weeds.",
	"Breathe. It's just a bad day, not a bad life.",
	"Self-care is not selfish. It is essential.",
	"The journey of a thousand miles begins with a single step.",
	"You are stronger than you think. You got this.",
}

// Welcome is the personalised banner for the dashboard.
type Welcome struct {
	Greeting  string
	FirstName string
	Quote     string
}

// Greeting picks a salutation for the given local hour (0-23).
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// FirstName derives a friendly name: the first word of the display name,
// else the email local part, else "User". The first letter is upper-cased.
func FirstName(displayName, email string) string {
	name := ""
	if fields := strings.Fields(displayName); len(fields) > 0 {
		name = fields[0]
	} else if local, _, _ := strings.Cut(email, "@"); local != "" {
		name = local
	}
	if name == "" {
		return "User"
	}

	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// QuoteOfDay returns the quote for t's day of the year.
func QuoteOfDay(t time.Time) string {
	return WellnessQuotes[(t.YearDay()-1)%len(WellnessQuotes)]
}

// NewWelcome builds the banner for a user at local time now.
func NewWelcome(u User, now time.Time) Welcome {
	return Welcome{
		Greeting:  Greeting(now.Hour()),
		FirstName: FirstName(u.DisplayName, u.Email),
		Quote:     QuoteOfDay(now),
	}
}

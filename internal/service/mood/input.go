package mood

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// MaxIdempotencyKeyLength bounds a client-supplied idempotency key.
const MaxIdempotencyKeyLength = 128

// LogMoodInput holds parameters for logging a mood entry.
type LogMoodInput struct {
	Mood           string
	Note           string
	IdempotencyKey string
}

// Validate checks the input and returns the resolved category.
func (i LogMoodInput) Validate(noteMaxLength int) (domain.MoodCategory, error) {
	var errs []domain.FieldError

	category, ok := domain.ParseSubmittedMood(i.Mood)
	switch {
	case i.Mood == "":
		errs = append(errs, domain.FieldError{Field: "mood", Message: "required"})
	case !ok:
		errs = append(errs, domain.FieldError{Field: "mood", Message: "must be one of Happy, Neutral, Sad, Anxious, Stressed"})
	}

	if utf8.RuneCountInString(i.Note) > noteMaxLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(i.IdempotencyKey) > MaxIdempotencyKeyLength {
		errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "too long"})
	} else if !printableASCII(i.IdempotencyKey) {
		errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "must be printable ASCII"})
	}

	if len(errs) > 0 {
		return "", &domain.ValidationError{Errors: errs}
	}
	return category, nil
}

// ListInput narrows a mood entry listing.
type ListInput struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be before to"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII || !unicode.IsPrint(rune(s[i])) {
			return false
		}
	}
	return true
}

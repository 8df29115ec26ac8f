package user

import (
	"unicode/utf8"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// MaxDisplayNameLength is the longest display name, in characters.
const MaxDisplayNameLength = 100

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	DisplayName string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	} else if utf8.RuneCountInString(i.DisplayName) > MaxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

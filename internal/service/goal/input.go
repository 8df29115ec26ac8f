package goal

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

const (
	maxGoalTypeLength = 200
	maxUnitLength     = 32
	minAmount         = 0.01
	maxAmount         = 1e9
)

// CreateGoalInput holds parameters for creating a goal.
type CreateGoalInput struct {
	GoalType     string
	Frequency    string
	TargetDate   string // YYYY-MM-DD
	TargetAmount *float64
	Unit         *string
}

// validated is a CreateGoalInput with its fields parsed.
type validated struct {
	frequency  domain.GoalFrequency
	targetDate time.Time
}

// Validate validates the create input and returns the parsed values.
func (i CreateGoalInput) Validate() (validated, error) {
	var (
		errs []domain.FieldError
		v    validated
	)

	if i.GoalType == "" {
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: "required"})
	} else if utf8.RuneCountInString(i.GoalType) > maxGoalTypeLength {
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: "too long"})
	}

	if f, ok := domain.ParseGoalFrequency(i.Frequency); ok {
		v.frequency = f
	} else {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be one of Daily, 3x/week, Weekly"})
	}

	if i.TargetDate == "" {
		errs = append(errs, domain.FieldError{Field: "target_date", Message: "required"})
	} else if d, err := time.Parse(domain.GoalDateLayout, i.TargetDate); err != nil {
		errs = append(errs, domain.FieldError{Field: "target_date", Message: "must be a date in YYYY-MM-DD format"})
	} else {
		v.targetDate = d
	}

	if i.TargetAmount != nil && !validAmount(*i.TargetAmount) {
		errs = append(errs, domain.FieldError{Field: "target_amount", Message: amountMessage})
	}

	if i.Unit != nil {
		switch {
		case i.TargetAmount == nil:
			errs = append(errs, domain.FieldError{Field: "unit", Message: "requires target_amount"})
		case utf8.RuneCountInString(*i.Unit) > maxUnitLength:
			errs = append(errs, domain.FieldError{Field: "unit", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return validated{}, &domain.ValidationError{Errors: errs}
	}
	return v, nil
}

// CompleteGoalInput holds parameters for completing a goal.
type CompleteGoalInput struct {
	GoalID  uuid.UUID
	Confirm bool
}

// Validate validates the complete input.
func (i CompleteGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Confirm {
		errs = append(errs, domain.FieldError{Field: "confirm", Message: "must be true to complete a goal"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProgressInput holds parameters for recording progress on a goal.
type ProgressInput struct {
	GoalID uuid.UUID
	Amount float64
}

// Validate validates the progress input.
func (i ProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !validAmount(i.Amount) {
		errs = append(errs, domain.FieldError{Field: "amount", Message: amountMessage})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

const amountMessage = "must be between 0.01 and 1000000000 with at most two decimals"

// validAmount accepts values a NUMERIC(12,2) column stores exactly.
func validAmount(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) || f < minAmount || f > maxAmount {
		return false
	}
	cents := f * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GoalDateLayout is the wire and storage format of a goal target date.
const GoalDateLayout = "2006-01-02"

// SelfCareGoal is a user-defined wellness goal.
// CompletedAt is set exactly when Status is Completed.
type SelfCareGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	GoalType      string
	Frequency     GoalFrequency
	TargetDate    time.Time
	Status        GoalStatus
	TargetAmount  *float64
	CurrentAmount float64
	Unit          *string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// IsActive reports whether the goal can still be completed or progressed.
func (g *SelfCareGoal) IsActive() bool {
	return g.Status == GoalStatusActive
}

// ProgressPercent returns CurrentAmount as a share of TargetAmount,
// capped at 100 and rounded to one decimal. Goals without a positive
// target report 0.
func (g *SelfCareGoal) ProgressPercent() float64 {
	return ProgressPercent(g.CurrentAmount, g.TargetAmount)
}

// ProgressPercent computes min(current/target*100, 100) rounded to one decimal.
func ProgressPercent(current float64, target *float64) float64 {
	if target == nil || *target <= 0 || current <= 0 {
		return 0
	}
	return RoundOneDecimal(math.Min(current / *target * 100, 100))
}

// TargetReached reports whether the recorded progress meets the target.
func (g *SelfCareGoal) TargetReached() bool {
	return g.TargetAmount != nil && *g.TargetAmount > 0 && g.CurrentAmount >= *g.TargetAmount
}

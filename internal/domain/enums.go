package domain

// GoalStatus is the lifecycle state of a self-care goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "Active"
	GoalStatusCompleted GoalStatus = "Completed"
)

func (s GoalStatus) String() string { return string(s) }

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a goal in status s may move to next.
// The only permitted transition is Active -> Completed.
func (s GoalStatus) CanTransitionTo(next GoalStatus) bool {
	return s == GoalStatusActive && next == GoalStatusCompleted
}

// GoalFrequency is how often a self-care goal is meant to be practised.
type GoalFrequency string

const (
	GoalFrequencyDaily        GoalFrequency = "Daily"
	GoalFrequencyThreePerWeek GoalFrequency = "3x/week"
	GoalFrequencyWeekly       GoalFrequency = "Weekly"
)

// DefaultGoalFrequency applies when a goal is created without a frequency.
const DefaultGoalFrequency = GoalFrequencyDaily

func (f GoalFrequency) String() string { return string(f) }

func (f GoalFrequency) IsValid() bool {
	switch f {
	case GoalFrequencyDaily, GoalFrequencyThreePerWeek, GoalFrequencyWeekly:
		return true
	}
	return false
}

// ParseGoalFrequency accepts the canonical values plus the long form
// "3 times a week". Empty input yields DefaultGoalFrequency.
func ParseGoalFrequency(raw string) (GoalFrequency, bool) {
	switch NormalizeText(raw) {
	case "":
		return DefaultGoalFrequency, true
	case "daily":
		return GoalFrequencyDaily, true
	case "3x/week", "3 times a week":
		return GoalFrequencyThreePerWeek, true
	case "weekly":
		return GoalFrequencyWeekly, true
	}
	return "", false
}

package offboarding

import "time"

// StepInput edits the step header. Nil fields are left untouched.
type StepInput struct {
	Notes       *string
	CompletedAt *time.Time
	Completed   *bool
}

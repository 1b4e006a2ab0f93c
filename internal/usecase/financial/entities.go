package financial

import (
	"time"
)

// StepInput edits the step header. Nil fields are left untouched.
type StepInput struct {
	Notes       *string
	CompletedAt *time.Time
	// Completed without CompletedAt stamps or clears the completion time.
	Completed *bool
}

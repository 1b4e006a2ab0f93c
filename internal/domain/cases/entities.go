package cases

import (
	"time"
)

type Status string

const (
	StatusInitialAssessment   Status = "INITIAL_ASSESSMENT"
	StatusInvestigation       Status = "INVESTIGATION"
	StatusAwaitingInformation Status = "AWAITING_INFORMATION"
	StatusInProgress          Status = "IN_PROGRESS"
	StatusOnHold              Status = "ON_HOLD"
	StatusResolved            Status = "RESOLVED"
	StatusClosed              Status = "CLOSED"
)

// InitialStatus is assigned to every new case regardless of the request.
const InitialStatus = StatusInitialAssessment

var statuses = []Status{
	StatusInitialAssessment,
	StatusInvestigation,
	StatusAwaitingInformation,
	StatusInProgress,
	StatusOnHold,
	StatusResolved,
	StatusClosed,
}

func Statuses() []Status { return append([]Status(nil), statuses...) }

func (s Status) Valid() bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Table: cases
type Case struct {
	ID string `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	// Human readable sequence, "C-{n}"
	CaseID       string    `gorm:"column:case_id;size:32;not null;uniqueIndex:ux_cases_case_id" json:"caseId"`
	Title        string    `gorm:"column:title;size:255;not null" json:"title"`
	Client       string    `gorm:"column:client;size:255;not null" json:"client"`
	Status       Status    `gorm:"column:status;size:40;not null;index" json:"status"`
	Priority     Priority  `gorm:"column:priority;size:16;not null" json:"priority"`
	AssignedToID *string   `gorm:"column:assigned_to_id;type:char(32);index" json:"assignedTo"`
	CreatedByID  string    `gorm:"column:created_by_id;type:char(32);not null;index" json:"createdBy"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Case) TableName() string { return "cases" }

// Sequence is a named monotonic counter row.
type Sequence struct {
	Name  string `gorm:"column:name;size:32;primaryKey"`
	Value int64  `gorm:"column:value;not null"`
}

func (Sequence) TableName() string { return "sequences" }

// SequenceName is the counter backing CaseID allocation.
const SequenceName = "case"

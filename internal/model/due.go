package model

import "time"

// DueStatus classifies a due date relative to today.
type DueStatus int

const (
	DueNone DueStatus = iota
	DueOverdue
	DueToday
	DueFuture
)

func (s DueStatus) String() string {
	switch s {
	case DueOverdue:
		return "overdue"
	case DueToday:
		return "today"
	case DueFuture:
		return "future"
	default:
		return "none"
	}
}

// DueStatusOf compares the task's due date with the calendar day of now.
func DueStatusOf(t Task, now time.Time) DueStatus {
	due, ok := t.Due()
	if !ok {
		return DueNone
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, due.Location())
	switch {
	case due.Before(today):
		return DueOverdue
	case due.Equal(today):
		return DueToday
	default:
		return DueFuture
	}
}

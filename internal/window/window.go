// Package window implements the monthly upload window gate: a pure
// function of the calendar date deciding whether new submissions are
// accepted. It must be evaluated fresh on every submission attempt.
package window

import (
	"fmt"
	"time"
)

// Phase classifies where today falls relative to the window.
type Phase string

const (
	PhaseBeforeOpen Phase = "before_open"
	PhaseOpen       Phase = "open"
	PhaseClosed     Phase = "closed"
)

// Policy holds the day-of-month boundaries of the upload window. OpenDay
// and CloseDay are inclusive. ReminderDay and LockDay drive the
// notification scheduler and do not affect the gate itself.
type Policy struct {
	OpenDay     int
	CloseDay    int
	ReminderDay int
	LockDay     int
}

// Status is the gate's verdict for a given date.
type Status struct {
	Open   bool   `json:"open"`
	Phase  Phase  `json:"phase"`
	Reason string `json:"reason"`
}

// Validate checks that the policy is internally coherent.
func (p Policy) Validate() error {
	if p.OpenDay < 1 || p.OpenDay > 31 {
		return fmt.Errorf("open day %d out of range [1,31]", p.OpenDay)
	}
	if p.CloseDay < p.OpenDay || p.CloseDay > 31 {
		return fmt.Errorf("close day %d out of range [%d,31]", p.CloseDay, p.OpenDay)
	}
	return nil
}

// Evaluate returns the window status for the given date. Deterministic:
// the verdict depends only on the day-of-month and the policy.
func (p Policy) Evaluate(today time.Time) Status {
	day := today.Day()
	switch {
	case day < p.OpenDay:
		return Status{
			Open:   false,
			Phase:  PhaseBeforeOpen,
			Reason: fmt.Sprintf("upload window opens on day %d of the month", p.OpenDay),
		}
	case day > p.CloseDay:
		return Status{
			Open:   false,
			Phase:  PhaseClosed,
			Reason: fmt.Sprintf("upload window closed for the current month; it reopens on day %d of next month", p.OpenDay),
		}
	default:
		return Status{
			Open:   true,
			Phase:  PhaseOpen,
			Reason: fmt.Sprintf("upload window is open (days %d-%d of the month)", p.OpenDay, p.CloseDay),
		}
	}
}

// ReminderDue reports whether the final-reminder notification should
// fire on the given date.
func (p Policy) ReminderDue(today time.Time) bool {
	return p.ReminderDay > 0 && today.Day() == p.ReminderDay
}

// LockDue reports whether the window lock transition falls on the given date.
func (p Policy) LockDue(today time.Time) bool {
	return p.LockDay > 0 && today.Day() == p.LockDay
}

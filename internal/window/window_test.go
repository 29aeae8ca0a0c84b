package window_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"misportal/internal/window"
)

func date(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
}

func TestEvaluateDefaultPolicy(t *testing.T) {
	p := window.Policy{OpenDay: 1, CloseDay: 10, ReminderDay: 8, LockDay: 11}

	st := p.Evaluate(date(1))
	assert.True(t, st.Open)
	assert.Equal(t, window.PhaseOpen, st.Phase)

	st = p.Evaluate(date(10))
	assert.True(t, st.Open, "close day is inclusive")

	st = p.Evaluate(date(11))
	assert.False(t, st.Open)
	assert.Equal(t, window.PhaseClosed, st.Phase)
	assert.Contains(t, st.Reason, "reopens")

	st = p.Evaluate(date(25))
	assert.False(t, st.Open)
	assert.Equal(t, window.PhaseClosed, st.Phase)
}

func TestEvaluateBeforeOpen(t *testing.T) {
	p := window.Policy{OpenDay: 5, CloseDay: 15}

	st := p.Evaluate(date(3))
	assert.False(t, st.Open)
	assert.Equal(t, window.PhaseBeforeOpen, st.Phase)
	assert.Contains(t, st.Reason, "opens on day 5")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, window.Policy{OpenDay: 1, CloseDay: 10}.Validate())
	assert.Error(t, window.Policy{OpenDay: 0, CloseDay: 10}.Validate())
	assert.Error(t, window.Policy{OpenDay: 15, CloseDay: 10}.Validate())
	assert.Error(t, window.Policy{OpenDay: 1, CloseDay: 40}.Validate())
}

func TestReminderAndLockDue(t *testing.T) {
	p := window.Policy{OpenDay: 1, CloseDay: 10, ReminderDay: 8, LockDay: 11}

	assert.True(t, p.ReminderDue(date(8)))
	assert.False(t, p.ReminderDue(date(9)))
	assert.True(t, p.LockDue(date(11)))
	assert.False(t, p.LockDue(date(10)))

	none := window.Policy{OpenDay: 1, CloseDay: 10}
	assert.False(t, none.ReminderDue(date(8)))
	assert.False(t, none.LockDue(date(11)))
}

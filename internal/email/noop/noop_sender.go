package noop

import (
	"context"
	"log"
	"time"

	"misportal/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs messages to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendUploadDecisionEmail(_ context.Context, msg port.DecisionEmail) error {
	verdict := "approved"
	if !msg.Approved {
		verdict = "rejected"
	}
	log.Printf("[NOOP EMAIL] Decision for %s (%s): %s upload %q %s",
		msg.ToName, msg.ToEmail, time.Month(msg.Month), msg.FileName, verdict)
	return nil
}

func (s *noopSender) SendWindowReminderEmail(_ context.Context, msg port.ReminderEmail) error {
	log.Printf("[NOOP EMAIL] Reminder for %s (%s): %s report for %s pending, window closes day %d",
		msg.ToName, msg.ToEmail, time.Month(msg.Month), msg.Department, msg.CloseDay)
	return nil
}

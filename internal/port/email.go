package port

import "context"

// DecisionEmail carries the details of an approve/reject notification.
type DecisionEmail struct {
	ToEmail    string
	ToName     string
	FileName   string
	Month      int
	Department string
	Approved   bool
	Note       string
}

// ReminderEmail carries the details of an upload-window reminder.
type ReminderEmail struct {
	ToEmail    string
	ToName     string
	Department string
	Month      int
	CloseDay   int
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendUploadDecisionEmail(ctx context.Context, msg DecisionEmail) error
	SendWindowReminderEmail(ctx context.Context, msg ReminderEmail) error
}

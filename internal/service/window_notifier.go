package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/window"
)

// WindowNotifier runs the daily upload-window jobs: on the reminder day
// it emails the HOD of every department that has not submitted the
// current month's report, and on the lock day it logs the close of the
// window.
type WindowNotifier struct {
	uploadRepo port.UploadRepository
	deptRepo   port.DepartmentRepository
	userRepo   port.UserRepository
	fyRepo     port.FinancialYearRepository
	emailer    port.EmailSender
	policy     window.Policy
	now        func() time.Time
	cron       *cron.Cron
}

// NewWindowNotifier creates a new WindowNotifier. The now function may
// be nil, in which case time.Now is used.
func NewWindowNotifier(
	uploadRepo port.UploadRepository,
	deptRepo port.DepartmentRepository,
	userRepo port.UserRepository,
	fyRepo port.FinancialYearRepository,
	emailer port.EmailSender,
	policy window.Policy,
	now func() time.Time,
) *WindowNotifier {
	if now == nil {
		now = time.Now
	}
	return &WindowNotifier{
		uploadRepo: uploadRepo,
		deptRepo:   deptRepo,
		userRepo:   userRepo,
		fyRepo:     fyRepo,
		emailer:    emailer,
		policy:     policy,
		now:        now,
	}
}

// Start schedules the daily run at 09:00 server time.
func (n *WindowNotifier) Start() error {
	n.cron = cron.New()
	_, err := n.cron.AddFunc("0 9 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		n.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	n.cron.Start()
	log.Printf("windowNotifier: scheduled daily run at 09:00")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (n *WindowNotifier) Stop() {
	if n.cron != nil {
		<-n.cron.Stop().Done()
	}
}

// RunOnce executes the day's jobs immediately. Exposed for the scheduler
// and for manual triggering.
func (n *WindowNotifier) RunOnce(ctx context.Context) {
	today := n.now()

	if n.policy.LockDue(today) {
		log.Printf("windowNotifier: upload window locked for month %d", int(today.Month()))
	}
	if !n.policy.ReminderDue(today) {
		return
	}
	if err := n.sendReminders(ctx, today); err != nil {
		log.Printf("windowNotifier: reminder run failed: %v", err)
	}
}

func (n *WindowNotifier) sendReminders(ctx context.Context, today time.Time) error {
	month := int(today.Month())

	fy, err := n.fyRepo.GetActive(ctx)
	if err != nil {
		return err
	}

	submitted, err := n.uploadRepo.DepartmentIDsWithUpload(ctx, fy.ID, month)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(submitted))
	for _, id := range submitted {
		have[id.String()] = true
	}

	depts, err := n.deptRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	hods, err := n.userRepo.ListByRole(ctx, domain.RoleHOD)
	if err != nil {
		return err
	}
	hodByDept := make(map[string][]domain.User)
	for _, h := range hods {
		if h.DepartmentID == nil || !h.IsActive {
			continue
		}
		key := h.DepartmentID.String()
		hodByDept[key] = append(hodByDept[key], h)
	}

	sent := 0
	for _, d := range depts {
		if have[d.ID.String()] {
			continue
		}
		for _, hod := range hodByDept[d.ID.String()] {
			msg := port.ReminderEmail{
				ToEmail:    hod.Email,
				ToName:     hod.Username,
				Department: d.Name,
				Month:      month,
				CloseDay:   n.policy.CloseDay,
			}
			if err := n.emailer.SendWindowReminderEmail(ctx, msg); err != nil {
				log.Printf("windowNotifier: reminder to %s failed: %v", hod.Email, err)
				continue
			}
			sent++
		}
	}
	log.Printf("windowNotifier: sent %d reminders for month %d", sent, month)
	return nil
}

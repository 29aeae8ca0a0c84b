package service

import (
	"context"
	"errors"
	"time"

	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/window"
)

// DepartmentProgress reports whether a department has submitted its
// report for the dashboard month.
type DepartmentProgress struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Submitted      bool   `json:"submitted"`
}

// Dashboard is the landing-page summary.
type Dashboard struct {
	FinancialYear *domain.FinancialYear `json:"financial_year"`
	Month         int                   `json:"month"`
	Window        window.Status         `json:"window"`
	StatusCounts  []port.StatusCount    `json:"status_counts"`
	Departments   []DepartmentProgress  `json:"departments,omitempty"`
}

// StatsService defines the dashboard summary contract.
type StatsService interface {
	Dashboard(ctx context.Context, actor *domain.User) (*Dashboard, error)
}

type statsService struct {
	uploadRepo port.UploadRepository
	deptRepo   port.DepartmentRepository
	fyRepo     port.FinancialYearRepository
	policy     window.Policy
	now        func() time.Time
}

// NewStatsService creates a new StatsService implementation. The now
// function may be nil, in which case time.Now is used.
func NewStatsService(
	uploadRepo port.UploadRepository,
	deptRepo port.DepartmentRepository,
	fyRepo port.FinancialYearRepository,
	policy window.Policy,
	now func() time.Time,
) StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsService{
		uploadRepo: uploadRepo,
		deptRepo:   deptRepo,
		fyRepo:     fyRepo,
		policy:     policy,
		now:        now,
	}
}

func (s *statsService) Dashboard(ctx context.Context, actor *domain.User) (*Dashboard, error) {
	today := s.now()
	month := int(today.Month())

	dash := &Dashboard{
		Month:  month,
		Window: s.policy.Evaluate(today),
	}

	fy, err := s.fyRepo.GetActive(ctx)
	if err != nil {
		// A portal without an active year still renders a dashboard.
		if errors.Is(err, domain.ErrNotFound) {
			return dash, nil
		}
		return nil, err
	}
	dash.FinancialYear = fy

	filter := port.UploadFilter{FinancialYearID: &fy.ID}
	if scope := actor.DepartmentScope(); scope != nil {
		filter.DepartmentID = scope
	}
	counts, err := s.uploadRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	dash.StatusCounts = counts

	// Reviewers additionally see which departments have submitted the
	// current month's report.
	if actor.CanReview() {
		submitted, err := s.uploadRepo.DepartmentIDsWithUpload(ctx, fy.ID, month)
		if err != nil {
			return nil, err
		}
		have := make(map[string]bool, len(submitted))
		for _, id := range submitted {
			have[id.String()] = true
		}

		depts, err := s.deptRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range depts {
			if !actor.InScope(d.ID) {
				continue
			}
			dash.Departments = append(dash.Departments, DepartmentProgress{
				DepartmentID:   d.ID.String(),
				DepartmentName: d.Name,
				Submitted:      have[d.ID.String()],
			})
		}
	}

	return dash, nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"misportal/internal/config"
	"misportal/internal/domain"
	"misportal/internal/excel"
	"misportal/internal/port"
	"misportal/internal/window"
)

// SubmitUploadInput is the DTO for monthly report submissions.
type SubmitUploadInput struct {
	Actor        *domain.User
	DepartmentID uuid.UUID
	Month        int
	FileName     string
	Data         []byte
}

// UploadService defines the monthly report upload contract.
type UploadService interface {
	Submit(ctx context.Context, input SubmitUploadInput) (*domain.Upload, error)
	GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Upload, error)
	List(ctx context.Context, actor *domain.User, filter port.UploadFilter, offset, limit int) ([]domain.Upload, int, error)
	Approve(ctx context.Context, actor *domain.User, id uuid.UUID, note string) (*domain.Upload, error)
	Reject(ctx context.Context, actor *domain.User, id uuid.UUID, note string) (*domain.Upload, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	GetDownloadURL(ctx context.Context, actor *domain.User, id uuid.UUID) (string, error)
	ListAudit(ctx context.Context, actor *domain.User, uploadID uuid.UUID, offset, limit int) ([]domain.UploadAuditEntry, int, error)
	WindowStatus() window.Status
}

type uploadService struct {
	uploadRepo port.UploadRepository
	auditRepo  port.UploadAuditRepository
	userRepo   port.UserRepository
	deptRepo   port.DepartmentRepository
	fyRepo     port.FinancialYearRepository
	storage    port.ObjectStorage
	emailer    port.EmailSender
	cfg        *config.S3Config
	policy     window.Policy
	now        func() time.Time
}

// NewUploadService creates a new UploadService implementation. The now
// function may be nil, in which case time.Now is used.
func NewUploadService(
	uploadRepo port.UploadRepository,
	auditRepo port.UploadAuditRepository,
	userRepo port.UserRepository,
	deptRepo port.DepartmentRepository,
	fyRepo port.FinancialYearRepository,
	storage port.ObjectStorage,
	emailer port.EmailSender,
	cfg *config.S3Config,
	policy window.Policy,
	now func() time.Time,
) UploadService {
	if now == nil {
		now = time.Now
	}
	return &uploadService{
		uploadRepo: uploadRepo,
		auditRepo:  auditRepo,
		userRepo:   userRepo,
		deptRepo:   deptRepo,
		fyRepo:     fyRepo,
		storage:    storage,
		emailer:    emailer,
		cfg:        cfg,
		policy:     policy,
		now:        now,
	}
}

// WindowStatus evaluates the upload window for the current date.
func (s *uploadService) WindowStatus() window.Status {
	return s.policy.Evaluate(s.now())
}

func (s *uploadService) Submit(ctx context.Context, input SubmitUploadInput) (*domain.Upload, error) {
	// The gate is checked fresh on every attempt, never cached.
	status := s.policy.Evaluate(s.now())
	if !status.Open {
		if status.Phase == window.PhaseBeforeOpen {
			return nil, fmt.Errorf("%w: %s", domain.ErrWindowNotOpen, status.Reason)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrWindowClosed, status.Reason)
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", domain.ErrFileInvalid, input.Month)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	sType, ok := domain.AllowedSpreadsheetExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Employees submit for their own department only; admins may submit
	// on behalf of any department.
	if !input.Actor.CanAdminister() && !input.Actor.InScope(input.DepartmentID) {
		return nil, domain.ErrWrongDepartment
	}
	dept, err := s.deptRepo.GetByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !dept.IsActive {
		return nil, domain.ErrDepartmentInactive
	}

	fy, err := s.fyRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no active financial year", domain.ErrUploadFailed)
		}
		return nil, err
	}

	summary, err := excel.ValidateWorkbook(input.Data)
	if err != nil {
		return nil, err
	}

	uploadID := uuid.New()
	s3Key := fmt.Sprintf("uploads/%s/%s/%02d/%s/%s",
		fy.ID, input.DepartmentID, input.Month, uploadID, input.FileName)
	contentType := domain.SpreadsheetContentTypes[sType]

	log.Printf("uploadService.Submit: %s (%d rows, %d cols) for department %s month %d by user %s",
		input.FileName, summary.Rows, summary.Columns, input.DepartmentID, input.Month, input.Actor.ID)

	// Blob first. If the metadata insert fails afterwards, the orphan
	// object is removed best-effort.
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(input.Data),
		ContentType: contentType,
		Size:        int64(len(input.Data)),
	}); err != nil {
		log.Printf("uploadService.Submit: blob upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	upload := &domain.Upload{
		ID:              uploadID,
		DepartmentID:    input.DepartmentID,
		Month:           input.Month,
		FinancialYearID: fy.ID,
		UploadedBy:      input.Actor.ID,
		FileName:        uploadID.String() + "." + ext,
		OriginalName:    input.FileName,
		FileSize:        int64(len(input.Data)),
		ContentType:     contentType,
		S3Bucket:        s.cfg.Bucket,
		S3Key:           s3Key,
		Status:          domain.UploadStatusValidated,
	}
	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		if delErr := s.storage.Delete(ctx, s.cfg.Bucket, s3Key); delErr != nil {
			log.Printf("uploadService.Submit: orphan blob cleanup failed for %s: %v", s3Key, delErr)
		}
		return nil, fmt.Errorf("creating upload record: %w", err)
	}

	s.audit(ctx, upload.ID, &input.Actor.ID, domain.AuditUploadSubmitted,
		fmt.Sprintf("submitted %s", input.FileName))

	return upload, nil
}

func (s *uploadService) GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Upload, error) {
	upload, err := s.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.InScope(upload.DepartmentID) {
		return nil, domain.ErrForbidden
	}
	return upload, nil
}

// List narrows the filter to the actor's department unless the actor is
// an admin. The same scoping applies to view, download and delete.
func (s *uploadService) List(ctx context.Context, actor *domain.User, filter port.UploadFilter, offset, limit int) ([]domain.Upload, int, error) {
	if scope := actor.DepartmentScope(); scope != nil {
		filter.DepartmentID = scope
	}
	return s.uploadRepo.List(ctx, filter, offset, limit)
}

func (s *uploadService) Approve(ctx context.Context, actor *domain.User, id uuid.UUID, note string) (*domain.Upload, error) {
	return s.decide(ctx, actor, id, domain.UploadStatusApproved, domain.AuditUploadApproved, note)
}

func (s *uploadService) Reject(ctx context.Context, actor *domain.User, id uuid.UUID, note string) (*domain.Upload, error) {
	return s.decide(ctx, actor, id, domain.UploadStatusRejected, domain.AuditUploadRejected, note)
}

// decide stamps the upload with the reviewer's verdict. A later decision
// overwrites an earlier one; every verdict is appended to the audit log.
func (s *uploadService) decide(ctx context.Context, actor *domain.User, id uuid.UUID, status domain.UploadStatus, action domain.AuditAction, note string) (*domain.Upload, error) {
	if !actor.CanReview() {
		return nil, domain.ErrForbidden
	}

	upload, err := s.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.InScope(upload.DepartmentID) {
		return nil, domain.ErrWrongDepartment
	}

	decidedAt := s.now().UTC()
	if err := s.uploadRepo.UpdateDecision(ctx, id, status, actor.ID, decidedAt); err != nil {
		return nil, err
	}
	upload.Status = status
	upload.DecidedBy = &actor.ID
	upload.DecidedAt = &decidedAt

	s.audit(ctx, id, &actor.ID, action, note)
	s.notifyDecision(ctx, upload, status == domain.UploadStatusApproved, note)

	return upload, nil
}

func (s *uploadService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	upload, err := s.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Admins delete anything, HODs anything in their own department, and
	// uploaders may withdraw their own submission while it is still
	// awaiting review.
	switch {
	case actor.CanAdminister():
	case actor.CanReview() && actor.InScope(upload.DepartmentID):
	case upload.UploadedBy == actor.ID && !upload.Status.Decided():
	default:
		return domain.ErrForbidden
	}

	// Audit before the row goes away.
	s.audit(ctx, id, &actor.ID, domain.AuditUploadDeleted,
		fmt.Sprintf("deleted %s", upload.OriginalName))

	if err := s.uploadRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Record removal wins. A stuck blob is logged, not surfaced.
	if err := s.storage.Delete(ctx, upload.S3Bucket, upload.S3Key); err != nil {
		log.Printf("uploadService.Delete: blob delete failed for %s: %v", upload.S3Key, err)
	}
	return nil
}

func (s *uploadService) GetDownloadURL(ctx context.Context, actor *domain.User, id uuid.UUID) (string, error) {
	upload, err := s.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !actor.InScope(upload.DepartmentID) {
		return "", domain.ErrForbidden
	}
	return s.storage.GetPresignedURL(ctx, upload.S3Bucket, upload.S3Key, s.cfg.PresignExpiry)
}

func (s *uploadService) ListAudit(ctx context.Context, actor *domain.User, uploadID uuid.UUID, offset, limit int) ([]domain.UploadAuditEntry, int, error) {
	upload, err := s.uploadRepo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.InScope(upload.DepartmentID) {
		return nil, 0, domain.ErrForbidden
	}
	return s.auditRepo.ListByUpload(ctx, uploadID, offset, limit)
}

func (s *uploadService) audit(ctx context.Context, uploadID uuid.UUID, actorID *uuid.UUID, action domain.AuditAction, note string) {
	entry := &domain.UploadAuditEntry{
		UploadID: uploadID,
		ActorID:  actorID,
		Action:   action,
		Note:     note,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("uploadService.audit: recording %s for upload %s failed: %v", action, uploadID, err)
	}
}

func (s *uploadService) notifyDecision(ctx context.Context, upload *domain.Upload, approved bool, note string) {
	uploader, err := s.userRepo.GetByID(ctx, upload.UploadedBy)
	if err != nil {
		log.Printf("uploadService.notifyDecision: uploader %s lookup failed: %v", upload.UploadedBy, err)
		return
	}
	dept, err := s.deptRepo.GetByID(ctx, upload.DepartmentID)
	if err != nil {
		log.Printf("uploadService.notifyDecision: department %s lookup failed: %v", upload.DepartmentID, err)
		return
	}

	msg := port.DecisionEmail{
		ToEmail:    uploader.Email,
		ToName:     uploader.Username,
		FileName:   upload.OriginalName,
		Month:      upload.Month,
		Department: dept.Name,
		Approved:   approved,
		Note:       note,
	}
	if err := s.emailer.SendUploadDecisionEmail(ctx, msg); err != nil {
		log.Printf("uploadService.notifyDecision: email to %s failed: %v", uploader.Email, err)
	}
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"misportal/internal/config"
	"misportal/internal/domain"
	"misportal/internal/port"
)

// UploadTemplateInput is the DTO for publishing a report template.
type UploadTemplateInput struct {
	Actor        *domain.User
	DepartmentID uuid.UUID
	FileName     string
	Data         []byte
}

// TemplateService defines the report template contract. The newest
// template per department wins; older ones stay downloadable by ID.
type TemplateService interface {
	Upload(ctx context.Context, input UploadTemplateInput) (*domain.Template, error)
	GetLatestForDepartment(ctx context.Context, actor *domain.User, departmentID uuid.UUID) (*domain.Template, error)
	GetDownloadURL(ctx context.Context, actor *domain.User, id uuid.UUID) (string, error)
	List(ctx context.Context, offset, limit int) ([]domain.Template, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type templateService struct {
	repo     port.TemplateRepository
	deptRepo port.DepartmentRepository
	storage  port.ObjectStorage
	cfg      *config.S3Config
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(
	repo port.TemplateRepository,
	deptRepo port.DepartmentRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) TemplateService {
	return &templateService{
		repo:     repo,
		deptRepo: deptRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *templateService) Upload(ctx context.Context, input UploadTemplateInput) (*domain.Template, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	sType, ok := domain.AllowedSpreadsheetExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	if _, err := s.deptRepo.GetByID(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	templateID := uuid.New()
	s3Key := fmt.Sprintf("templates/%s/%s/%s", input.DepartmentID, templateID, input.FileName)
	contentType := domain.SpreadsheetContentTypes[sType]

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(input.Data),
		ContentType: contentType,
		Size:        int64(len(input.Data)),
	}); err != nil {
		log.Printf("templateService.Upload: blob upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	tpl := &domain.Template{
		ID:           templateID,
		DepartmentID: input.DepartmentID,
		UploadedBy:   input.Actor.ID,
		FileName:     templateID.String() + "." + ext,
		OriginalName: input.FileName,
		FileSize:     int64(len(input.Data)),
		ContentType:  contentType,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
	}
	if err := s.repo.Create(ctx, tpl); err != nil {
		if delErr := s.storage.Delete(ctx, s.cfg.Bucket, s3Key); delErr != nil {
			log.Printf("templateService.Upload: orphan blob cleanup failed for %s: %v", s3Key, delErr)
		}
		return nil, fmt.Errorf("creating template record: %w", err)
	}
	return tpl, nil
}

func (s *templateService) GetLatestForDepartment(ctx context.Context, actor *domain.User, departmentID uuid.UUID) (*domain.Template, error) {
	if !actor.InScope(departmentID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.GetLatestForDepartment(ctx, departmentID)
}

func (s *templateService) GetDownloadURL(ctx context.Context, actor *domain.User, id uuid.UUID) (string, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !actor.InScope(tpl.DepartmentID) {
		return "", domain.ErrForbidden
	}
	return s.storage.GetPresignedURL(ctx, tpl.S3Bucket, tpl.S3Key, s.cfg.PresignExpiry)
}

func (s *templateService) List(ctx context.Context, offset, limit int) ([]domain.Template, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *templateService) Delete(ctx context.Context, id uuid.UUID) error {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, tpl.S3Bucket, tpl.S3Key); err != nil {
		log.Printf("templateService.Delete: blob delete failed for %s: %v", tpl.S3Key, err)
	}
	return nil
}

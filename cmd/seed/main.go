// Command seed provisions a development database: one company, three
// departments with their HOD and employee accounts, an active financial
// year, an admin account, and a starter report template per department.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"

	"misportal/internal/config"
	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/repository/postgres"
	s3storage "misportal/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	companyRepo := postgres.NewCompanyRepo(db)
	deptRepo := postgres.NewDepartmentRepo(db)
	fyRepo := postgres.NewFinancialYearRepo(db)
	userRepo := postgres.NewUserRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)

	ctx := context.Background()

	company := &domain.Company{Name: "Meridian Industries", Address: "Plot 14, Industrial Area, Pune", IsActive: true}
	if err := companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			log.Println("seed: company already present, nothing to do")
			return nil
		}
		return err
	}

	fy := &domain.FinancialYear{
		Name:      "2025-2026",
		StartDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := fyRepo.Create(ctx, fy); err != nil {
		return err
	}
	if err := fyRepo.Activate(ctx, fy.ID); err != nil {
		return err
	}

	admin, err := newUser("admin", "admin@meridian.example", "admin123", domain.RoleAdmin, nil)
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	for _, name := range []string{"Finance", "HR", "IT"} {
		dept := &domain.Department{CompanyID: company.ID, Name: name, IsActive: true}
		if err := deptRepo.Create(ctx, dept); err != nil {
			return err
		}

		lower := lowercase(name)
		hod, err := newUser(lower+"_hod", lower+".hod@meridian.example", "hod12345", domain.RoleHOD, &dept.ID)
		if err != nil {
			return err
		}
		if err := userRepo.Create(ctx, hod); err != nil {
			return err
		}

		emp, err := newUser(lower+"_user", lower+".user@meridian.example", "user12345", domain.RoleUser, &dept.ID)
		if err != nil {
			return err
		}
		if err := userRepo.Create(ctx, emp); err != nil {
			return err
		}

		if err := seedTemplate(ctx, templateRepo, s3Client, &cfg.S3, dept, admin); err != nil {
			return err
		}
		log.Printf("seed: department %s ready", name)
	}

	log.Println("seed: done")
	return nil
}

func newUser(username, email, password string, role domain.UserRole, deptID *uuid.UUID) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %s: %w", username, err)
	}
	return &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		DepartmentID: deptID,
		IsActive:     true,
	}, nil
}

func lowercase(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func seedTemplate(
	ctx context.Context,
	repo port.TemplateRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
	dept *domain.Department,
	admin *domain.User,
) error {
	data, err := buildTemplateWorkbook(dept.Name)
	if err != nil {
		return err
	}

	tpl := &domain.Template{
		DepartmentID: dept.ID,
		UploadedBy:   admin.ID,
		OriginalName: lowercase(dept.Name) + "_mis_template.xlsx",
		FileSize:     int64(len(data)),
		ContentType:  domain.SpreadsheetContentTypes[domain.SpreadsheetXLSX],
		S3Bucket:     cfg.Bucket,
	}
	tpl.S3Key = fmt.Sprintf("templates/%s/seed/%s", dept.ID, tpl.OriginalName)
	tpl.FileName = tpl.OriginalName

	if _, err := storage.Upload(ctx, port.UploadInput{
		Bucket:      cfg.Bucket,
		Key:         tpl.S3Key,
		Body:        bytes.NewReader(data),
		ContentType: tpl.ContentType,
		Size:        tpl.FileSize,
	}); err != nil {
		return fmt.Errorf("uploading seed template for %s: %w", dept.Name, err)
	}
	return repo.Create(ctx, tpl)
}

func buildTemplateWorkbook(deptName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"Metric", "Target", "Actual", "Variance", "Remarks"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return nil, err
	}
	sample := []interface{}{deptName + " headline metric", 0, 0, 0, ""}
	if err := f.SetSheetRow("Sheet1", "A2", &sample); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

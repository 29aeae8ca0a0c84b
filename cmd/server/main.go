package main

import (
	"fmt"
	"log"

	"misportal/internal/config"
	"misportal/internal/email/noop"
	"misportal/internal/email/ses"
	"misportal/internal/handler"
	"misportal/internal/port"
	"misportal/internal/repository/postgres"
	"misportal/internal/router"
	"misportal/internal/service"
	s3storage "misportal/internal/storage/s3"
	"misportal/internal/window"
)

// @title MIS Portal API
// @version 1.0
// @description Monthly MIS report collection portal: uploads, reviews, master data.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	policy := window.Policy{
		OpenDay:     cfg.Window.OpenDay,
		CloseDay:    cfg.Window.CloseDay,
		ReminderDay: cfg.Window.ReminderDay,
		LockDay:     cfg.Window.LockDay,
	}
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("invalid upload window policy: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	deptRepo := postgres.NewDepartmentRepo(db)
	fyRepo := postgres.NewFinancialYearRepo(db)
	userRepo := postgres.NewUserRepo(db)
	uploadRepo := postgres.NewUploadRepo(db)
	auditRepo := postgres.NewUploadAuditRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailer port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailer, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailer = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo, deptRepo)
	companySvc := service.NewCompanyService(companyRepo)
	deptSvc := service.NewDepartmentService(deptRepo, companyRepo)
	fySvc := service.NewFinancialYearService(fyRepo)
	uploadSvc := service.NewUploadService(uploadRepo, auditRepo, userRepo, deptRepo, fyRepo, s3Client, emailer, &cfg.S3, policy, nil)
	templateSvc := service.NewTemplateService(templateRepo, deptRepo, s3Client, &cfg.S3)
	statsSvc := service.NewStatsService(uploadRepo, deptRepo, fyRepo, policy, nil)

	// Window reminder scheduler
	notifier := service.NewWindowNotifier(uploadRepo, deptRepo, userRepo, fyRepo, emailer, policy, nil)
	if err := notifier.Start(); err != nil {
		return fmt.Errorf("failed to start window notifier: %w", err)
	}
	defer notifier.Stop()

	// Initialize handlers
	h := router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Upload:        handler.NewUploadHandler(uploadSvc),
		Template:      handler.NewTemplateHandler(templateSvc),
		User:          handler.NewUserHandler(userSvc),
		Company:       handler.NewCompanyHandler(companySvc),
		Department:    handler.NewDepartmentHandler(deptSvc),
		FinancialYear: handler.NewFinancialYearHandler(fySvc),
		Dashboard:     handler.NewDashboardHandler(statsSvc),
		Health:        handler.NewHealthHandler(db),
	}

	r := router.Setup(cfg, authSvc, userRepo, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

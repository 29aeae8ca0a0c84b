package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "misportal/docs"
	"misportal/internal/config"
	"misportal/internal/domain"
	"misportal/internal/handler"
	"misportal/internal/middleware"
	"misportal/internal/port"
	"misportal/internal/service"
)

// Handlers bundles everything Setup wires into the engine.
type Handlers struct {
	Auth          *handler.AuthHandler
	Upload        *handler.UploadHandler
	Template      *handler.TemplateHandler
	User          *handler.UserHandler
	Company       *handler.CompanyHandler
	Department    *handler.DepartmentHandler
	FinancialYear *handler.FinancialYearHandler
	Dashboard     *handler.DashboardHandler
	Health        *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	userRepo port.UserRepository,
	h Handlers,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT and an active account
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc, userRepo))

	protected.GET("/auth/me", h.Auth.Me)
	protected.GET("/dashboard", h.Dashboard.Get)

	// Upload routes
	uploads := protected.Group("/uploads")
	uploads.GET("/window", h.Upload.Window)
	uploads.POST("", h.Upload.Submit)
	uploads.GET("", h.Upload.List)
	uploads.GET("/:id", h.Upload.Get)
	uploads.GET("/:id/download", h.Upload.Download)
	uploads.GET("/:id/audit", h.Upload.Audit)
	uploads.POST("/:id/approve", middleware.RequireRole(domain.RoleAdmin, domain.RoleHOD), h.Upload.Approve)
	uploads.POST("/:id/reject", middleware.RequireRole(domain.RoleAdmin, domain.RoleHOD), h.Upload.Reject)
	uploads.DELETE("/:id", h.Upload.Delete)

	// Template routes
	templates := protected.Group("/templates")
	templates.GET("/department/:id", h.Template.Latest)
	templates.GET("/:id/download", h.Template.Download)
	templates.POST("", middleware.RequireRole(domain.RoleAdmin), h.Template.Upload)
	templates.GET("", middleware.RequireRole(domain.RoleAdmin), h.Template.List)
	templates.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Template.Delete)

	// Master data - read open to all authenticated users, writes admin only
	departments := protected.Group("/departments")
	departments.GET("", h.Department.List)
	departments.GET("/:id", h.Department.Get)
	departments.POST("", middleware.RequireRole(domain.RoleAdmin), h.Department.Create)
	departments.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Department.Update)
	departments.POST("/:id/toggle", middleware.RequireRole(domain.RoleAdmin), h.Department.Toggle)
	departments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Department.Delete)

	companies := protected.Group("/companies")
	companies.GET("", h.Company.List)
	companies.GET("/:id", h.Company.Get)
	companies.POST("", middleware.RequireRole(domain.RoleAdmin), h.Company.Create)
	companies.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Company.Update)
	companies.POST("/:id/toggle", middleware.RequireRole(domain.RoleAdmin), h.Company.Toggle)
	companies.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Company.Delete)

	years := protected.Group("/financial-years")
	years.GET("", h.FinancialYear.List)
	years.GET("/active", h.FinancialYear.GetActive)
	years.GET("/:id", h.FinancialYear.Get)
	years.POST("", middleware.RequireRole(domain.RoleAdmin), h.FinancialYear.Create)
	years.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.FinancialYear.Update)
	years.POST("/:id/activate", middleware.RequireRole(domain.RoleAdmin), h.FinancialYear.Activate)
	years.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.FinancialYear.Delete)

	// User management (admin only)
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(domain.RoleAdmin))
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.Get)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", h.User.Delete)

	return r
}

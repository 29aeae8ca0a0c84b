package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Window WindowConfig
	Email  EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// WindowConfig holds the monthly upload window day boundaries.
type WindowConfig struct {
	OpenDay     int `mapstructure:"open_day"`
	CloseDay    int `mapstructure:"close_day"`
	ReminderDay int `mapstructure:"reminder_day"`
	LockDay     int `mapstructure:"lock_day"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// Load reads configuration from environment variables with the MIS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "misportal")
	v.SetDefault("db.password", "misportal_secret")
	v.SetDefault("db.name", "misportal_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "misportal")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "misportal-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload window defaults: open days 1-10, reminder before close, lock after
	v.SetDefault("window.open_day", 1)
	v.SetDefault("window.close_day", 10)
	v.SetDefault("window.reminder_day", 8)
	v.SetDefault("window.lock_day", 11)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@misportal.local")
	v.SetDefault("email.from_name", "MIS Portal")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "MIS_SERVER_PORT",
		"server.read_timeout":  "MIS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "MIS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "MIS_SERVER_ENVIRONMENT",
		"db.host":              "MIS_DB_HOST",
		"db.port":              "MIS_DB_PORT",
		"db.user":              "MIS_DB_USER",
		"db.password":          "MIS_DB_PASSWORD",
		"db.name":              "MIS_DB_NAME",
		"db.sslmode":           "MIS_DB_SSLMODE",
		"db.max_open":          "MIS_DB_MAX_OPEN",
		"db.max_idle":          "MIS_DB_MAX_IDLE",
		"jwt.secret":           "MIS_JWT_SECRET",
		"jwt.access_expiry":    "MIS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "MIS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "MIS_JWT_ISSUER",
		"s3.region":            "MIS_S3_REGION",
		"s3.bucket":            "MIS_S3_BUCKET",
		"s3.endpoint":          "MIS_S3_ENDPOINT",
		"s3.access_key":        "MIS_S3_ACCESS_KEY",
		"s3.secret_key":        "MIS_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "MIS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "MIS_S3_PRESIGN_EXPIRY",
		"log.level":            "MIS_LOG_LEVEL",
		"log.format":           "MIS_LOG_FORMAT",
		"cors.allowed_origins": "MIS_CORS_ALLOWED_ORIGINS",
		"window.open_day":      "MIS_WINDOW_OPEN_DAY",
		"window.close_day":     "MIS_WINDOW_CLOSE_DAY",
		"window.reminder_day":  "MIS_WINDOW_REMINDER_DAY",
		"window.lock_day":      "MIS_WINDOW_LOCK_DAY",
		"email.provider":       "MIS_EMAIL_PROVIDER",
		"email.region":         "MIS_EMAIL_REGION",
		"email.from_address":   "MIS_EMAIL_FROM_ADDRESS",
		"email.from_name":      "MIS_EMAIL_FROM_NAME",
		"email.frontend_url":   "MIS_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MIS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MIS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Window = WindowConfig{
		OpenDay:     v.GetInt("window.open_day"),
		CloseDay:    v.GetInt("window.close_day"),
		ReminderDay: v.GetInt("window.reminder_day"),
		LockDay:     v.GetInt("window.lock_day"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}

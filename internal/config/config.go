package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string   `env:"SERVER_PORT" envDefault:"8080"`
	MySQLDSN    string   `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/eduai?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr   string   `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int      `env:"REDIS_DB" envDefault:"0"`
	RedisPass   string   `env:"REDIS_PASSWORD"`
	JWTSecret   string   `env:"JWT_SECRET" envDefault:"change-me"`
	SwaggerHost string   `env:"SWAGGER_HOST"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ResetDB     bool     `env:"RESET_DB" envDefault:"false"`

	// Mail
	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"EduAI Labs <onboarding@resend.dev>"`
	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"starkmind.ai@gmail.com"`
	InquiryEmail string `env:"INQUIRY_EMAIL" envDefault:"starkmind.ai@gmail.com"`

	PlanCacheTTL time.Duration `env:"PLAN_CACHE_TTL" envDefault:"10m"`
	AuditBuffer  int           `env:"AUDIT_BUFFER" envDefault:"100"`

	// Seed
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@eduai.local"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"change-me-now"`
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load() // ok if missing in prod

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

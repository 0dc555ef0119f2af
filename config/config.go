package config

import (
	"log"
	"os"
	"strings"
	"time"

	"car-rental-backend/utils"

	"github.com/joho/godotenv"
)

const (
	devSessionSecret = "dev-only-session-secret-change-me"
	devAdminPassword = "admin123"
)

// Config holds application configuration read from the environment.
type Config struct {
	Port        string
	GinMode     string
	CorsOrigins []string

	DBDriver   string // mysql | postgres | sqlite
	DBURL      string
	DBUser     string
	DBPass     string
	DBHost     string
	DBPort     string
	DBName     string
	SQLitePath string
	DBLogLevel string

	SessionSecret string
	SessionTTL    time.Duration

	AdminUsername string
	AdminPassword string
}

// Load reads .env (optional) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := &Config{
		Port:        utils.EnvOrDefault("PORT", "8080"),
		GinMode:     utils.EnvOrDefault("GIN_MODE", "release"),
		CorsOrigins: ParseCorsOrigins(os.Getenv("CORS_ORIGINS")),

		DBDriver:   strings.ToLower(utils.EnvOrDefault("DB_DRIVER", "mysql")),
		DBURL:      firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("MYSQL_URL")),
		DBUser:     utils.EnvOrDefault("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASS"),
		DBHost:     utils.EnvOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     utils.EnvOrDefault("DB_NAME", "car_rental"),
		SQLitePath: utils.EnvOrDefault("SQLITE_PATH", "car_rental.db"),
		DBLogLevel: strings.ToLower(utils.EnvOrDefault("DB_LOG_LEVEL", "warn")),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    24 * time.Hour,

		AdminUsername: utils.EnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if raw := os.Getenv("SESSION_TTL"); strings.TrimSpace(raw) != "" {
		ttl, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil || ttl <= 0 {
			log.Printf("warning: invalid SESSION_TTL %q, using %s", raw, cfg.SessionTTL)
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if cfg.SessionSecret == "" && cfg.GinMode == "debug" {
		log.Println("warning: SESSION_SECRET not set, using the development secret")
		cfg.SessionSecret = devSessionSecret
	}

	// Outside debug mode an admin is only seeded with an explicit password.
	if cfg.AdminPassword == "" && cfg.GinMode == "debug" {
		log.Printf("warning: ADMIN_PASSWORD not set, seeding %q with the development password", cfg.AdminUsername)
		cfg.AdminPassword = devAdminPassword
	}

	return cfg
}

// ParseCorsOrigins splits a comma list; empty input allows any origin.
func ParseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

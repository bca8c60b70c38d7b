package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName      string
	AppEnv       string
	AppURL       string
	Port         string
	AppTagline   string
	SupportEmail string
	ContentPath  string

	// Store (driver switch via ENV, default: file)
	StoreDriver  string
	DataPath     string
	DBConnection string

	// Funnel plan pricing (display only, checkout is stubbed)
	PlanMonthlyPrice string
	PlanAnnualPrice  string
	PaymentProvider  string

	// Tracking
	RecentInjectionLimit int

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		// Application
		AppName:      envString("APP_NAME", "Monjauro"),
		AppEnv:       envString("APP_ENV", "development"),
		AppURL:       envString("APP_URL", "http://localhost:8090"),
		Port:         envString("PORT", "8090"),
		AppTagline:   envString("APP_TAGLINE", "Track your treatment, nutrition and progress"),
		SupportEmail: envString("SUPPORT_EMAIL", "hello@example.com"),
		ContentPath:  envString("CONTENT_PATH", "content"),

		// Store
		StoreDriver:  envString("STORE_DRIVER", "file"),
		DataPath:     envString("DATA_PATH", "./data"),
		DBConnection: envString("DB_CONNECTION", "./data/monjauro.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Funnel
		PlanMonthlyPrice: envString("PLAN_MONTHLY_PRICE", "R$ 39,90"),
		PlanAnnualPrice:  envString("PLAN_ANNUAL_PRICE", "R$ 29,90"),
		PaymentProvider:  envString("PAYMENT_PROVIDER", "stub"),

		// Tracking
		RecentInjectionLimit: envInt("RECENT_INJECTION_LIMIT", 5),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:      c.AppName,
		AppEnv:       c.AppEnv,
		AppURL:       c.AppURL,
		Port:         c.Port,
		AppTagline:   c.AppTagline,
		SupportEmail: c.SupportEmail,

		PlanMonthlyPrice: c.PlanMonthlyPrice,
		PlanAnnualPrice:  c.PlanAnnualPrice,

		RecentInjectionLimit: c.RecentInjectionLimit,
	}
}

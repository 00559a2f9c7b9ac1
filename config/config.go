package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"weddinginvite/internal/domain"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreSheets   = "sheets"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	StoreDriver string
	DBUrl       string
	Sheets      SheetsConfig

	ResponseSchema     domain.ResponseSchema
	BaseURL            string
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration

	Email       EmailConfig
	NotifyEmail string
}

// SheetsConfig holds the service account credentials for the Google Sheets store.
type SheetsConfig struct {
	PrivateKey    string
	ClientEmail   string
	SpreadsheetID string
}

// EmailConfig holds mailer settings for host notifications.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	// In production .env usually does not exist and system environment variables are used.
	if env := os.Getenv("GO_ENV"); env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Environment: get("GO_ENV", "development"),
		Port:        get("PORT", "8080"),
		LogLevel:    get("LOG_LEVEL", "info"),
		StoreDriver: strings.ToLower(get("STORE_DRIVER", StoreSheets)),
		DBUrl:       get("DATABASE_URL", ""),
		Sheets: SheetsConfig{
			// Private keys keep their surrounding whitespace; the store adapter normalizes them.
			PrivateKey:    getenv("GOOGLE_SHEETS_PRIVATE_KEY"),
			ClientEmail:   get("GOOGLE_SHEETS_CLIENT_EMAIL", ""),
			SpreadsheetID: get("GOOGLE_SHEET_ID", ""),
		},
		NotifyEmail: get("RSVP_NOTIFY_EMAIL", ""),
		Email: EmailConfig{
			Provider:        get("EMAIL_PROVIDER", "noop"),
			FromAddress:     get("EMAIL_FROM_ADDRESS", ""),
			FromName:        get("EMAIL_FROM_NAME", ""),
			AWSRegion:       get("AWS_REGION", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
		},
	}
	cfg.BaseURL = strings.TrimRight(get("BASE_URL", "http://localhost:"+cfg.Port), "/")

	var errs []error

	schema, err := domain.ParseResponseSchema(get("RESPONSE_SCHEMA", ""))
	if err != nil {
		errs = append(errs, fmt.Errorf("RESPONSE_SCHEMA: %w", err))
	}
	cfg.ResponseSchema = schema

	timeout, err := time.ParseDuration(get("REQUEST_TIMEOUT", "15s"))
	if err != nil || timeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT: invalid duration %q", getenv("REQUEST_TIMEOUT")))
	}
	cfg.RequestTimeout = timeout

	if s := get("SES_INSECURE_SKIP_VERIFY", ""); s != "" {
		skip, err := strconv.ParseBool(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("SES_INSECURE_SKIP_VERIFY: %w", err))
		}
		cfg.Email.InsecureSkipVerify = skip
	}

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", cfg.BaseURL), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	switch cfg.StoreDriver {
	case StoreSheets:
		if missing := cfg.Sheets.missing(); len(missing) > 0 {
			errs = append(errs, fmt.Errorf("%w: set %s", domain.ErrMissingCredentials, strings.Join(missing, ", ")))
		}
	case StorePostgres:
		if cfg.DBUrl == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for the postgres store"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER: unknown driver %q", cfg.StoreDriver))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (s SheetsConfig) missing() []string {
	var missing []string
	if strings.TrimSpace(s.PrivateKey) == "" {
		missing = append(missing, "GOOGLE_SHEETS_PRIVATE_KEY")
	}
	if s.ClientEmail == "" {
		missing = append(missing, "GOOGLE_SHEETS_CLIENT_EMAIL")
	}
	if s.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	return missing
}

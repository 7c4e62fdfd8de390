package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Records   RecordsConfig   `yaml:"records"`
	Email     EmailConfig     `yaml:"email"`
	Admin     AdminConfig     `yaml:"admin"`
	Journal   JournalConfig   `yaml:"journal"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RecordsConfig contains settings for the external records API
type RecordsConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// EmailConfig contains SendGrid settings and the fixed offer defaults
type EmailConfig struct {
	APIKey            string        `yaml:"api_key"`
	FromEmail         string        `yaml:"from_email"`
	FromName          string        `yaml:"from_name"`
	OfferTemplateID   string        `yaml:"offer_template_id"`
	BookingTemplateID string        `yaml:"booking_template_id"`
	ResponseDomain    string        `yaml:"response_domain"`
	OfficeAddressURL  string        `yaml:"office_address_url"`
	Defaults          OfferDefaults `yaml:"defaults"`
}

// OfferDefaults are the static fields every offer email carries. They are
// not per-candidate; the hiring program sends one standard offer.
type OfferDefaults struct {
	Position       string `yaml:"position"`
	Department     string `yaml:"department"`
	Mode           string `yaml:"mode"`
	InternshipType string `yaml:"internship_type"`
	Duration       string `yaml:"duration"`
}

// AdminConfig contains admin authentication settings
type AdminConfig struct {
	Email              string `yaml:"email"`
	PasswordHash       string `yaml:"password_hash"` // bcrypt
	JWTSecret          string `yaml:"jwt_secret"`
	TokenExpiryMinutes int    `yaml:"token_expiry_minutes"`
}

// JournalConfig selects the dispatch journal store. Type "memory" keeps
// entries in process; "postgres" persists them.
type JournalConfig struct {
	Type     string `yaml:"type"` // "memory" or "postgres"
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// RateLimitConfig throttles the public candidate-facing endpoints
type RateLimitConfig struct {
	Requests      int    `yaml:"requests"`
	WindowSeconds int    `yaml:"window_seconds"`
	RedisAddr     string `yaml:"redis_addr"` // empty selects the in-memory limiter
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ReconcileOfferRecords string `yaml:"reconcile_offer_records"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Records API
	if val := os.Getenv("RECORDS_API_URL"); val != "" {
		c.Records.BaseURL = val
	}

	// SendGrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.Email.FromEmail = val
	}
	if val := os.Getenv("SENDGRID_OFFER_TEMPLATE_ID"); val != "" {
		c.Email.OfferTemplateID = val
	}
	if val := os.Getenv("SENDGRID_BOOKING_TEMPLATE_ID"); val != "" {
		c.Email.BookingTemplateID = val
	}

	// Admin
	if val := os.Getenv("ADMIN_EMAIL"); val != "" {
		c.Admin.Email = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Admin.PasswordHash = val
	}
	if val := os.Getenv("ADMIN_JWT_SECRET"); val != "" {
		c.Admin.JWTSecret = val
	}

	// Journal database
	if val := os.Getenv("JOURNAL_DB_HOST"); val != "" {
		c.Journal.Host = val
	}
	if val := os.Getenv("JOURNAL_DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Journal.Port)
	}
	if val := os.Getenv("JOURNAL_DB_USER"); val != "" {
		c.Journal.User = val
	}
	if val := os.Getenv("JOURNAL_DB_PASSWORD"); val != "" {
		c.Journal.Password = val
	}
	if val := os.Getenv("JOURNAL_DB_NAME"); val != "" {
		c.Journal.Database = val
	}

	// Rate limit
	if val := os.Getenv("RATE_LIMIT_REDIS_ADDR"); val != "" {
		c.RateLimit.RedisAddr = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Records API validation
	if c.Records.BaseURL == "" {
		return fmt.Errorf("records API base URL is required")
	}
	if c.Records.TimeoutSeconds <= 0 {
		c.Records.TimeoutSeconds = 15
	}

	// Email validation
	if c.Email.APIKey == "" {
		return fmt.Errorf("SendGrid API key is required")
	}
	if c.Email.FromEmail == "" {
		return fmt.Errorf("sender email is required")
	}
	if c.Email.OfferTemplateID == "" {
		return fmt.Errorf("offer email template ID is required")
	}
	if c.Email.BookingTemplateID == "" {
		return fmt.Errorf("booking email template ID is required")
	}
	if c.Email.ResponseDomain == "" {
		return fmt.Errorf("response domain is required")
	}

	// Offer defaults
	if c.Email.Defaults.Position == "" {
		c.Email.Defaults.Position = "Software Engineer"
	}
	if c.Email.Defaults.Department == "" {
		c.Email.Defaults.Department = "Engineering"
	}
	if c.Email.Defaults.Mode == "" {
		c.Email.Defaults.Mode = "In-Office"
	}
	if c.Email.Defaults.InternshipType == "" {
		c.Email.Defaults.InternshipType = "Full-time"
	}
	if c.Email.Defaults.Duration == "" {
		c.Email.Defaults.Duration = "6 months"
	}

	// Admin validation
	if c.Admin.Email == "" {
		return fmt.Errorf("admin email is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin password hash is required")
	}
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("admin JWT secret is required")
	}
	if len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("admin JWT secret must be at least 32 characters")
	}
	if c.Admin.TokenExpiryMinutes <= 0 {
		c.Admin.TokenExpiryMinutes = 60
	}

	// Journal validation
	if c.Journal.Type == "" {
		c.Journal.Type = "memory"
	}
	if c.Journal.Type != "memory" && c.Journal.Type != "postgres" {
		return fmt.Errorf("unsupported journal type: %s", c.Journal.Type)
	}
	if c.Journal.Type == "postgres" {
		if c.Journal.Host == "" {
			return fmt.Errorf("journal database host is required")
		}
		if c.Journal.User == "" {
			return fmt.Errorf("journal database user is required")
		}
		if c.Journal.Database == "" {
			return fmt.Errorf("journal database name is required")
		}
		if c.Journal.SSLMode == "" {
			c.Journal.SSLMode = "disable"
		}
	}

	// Rate limit defaults
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = 30
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}

	// Scheduler defaults
	if c.Scheduler.ReconcileOfferRecords == "" {
		c.Scheduler.ReconcileOfferRecords = "0 */5 * * * *" // every 5 minutes
	}

	return nil
}

// GetJournalConnectionString returns a PostgreSQL connection string
func (c *Config) GetJournalConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Journal.User,
		c.Journal.Password,
		c.Journal.Host,
		c.Journal.Port,
		c.Journal.Database,
		c.Journal.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

package config

import (
	"strings"
	"time"
)

// MailConfig holds the notification transport settings. It is built once at
// startup and handed to the mailer and notifier constructors; business logic
// never reads the environment itself.
type MailConfig struct {
	Provider       string // "smtp", "ses", or "noop"
	FromAddress    string
	FromName       string
	ManagerAddress string // fallback recipient for RSVP notifications
	SendTimeout    time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPTLS  bool

	SESRegion             string
	SESAccessKeyID        string
	SESSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Configured reports whether the transport credentials for the selected
// provider are all present. When false the dispatcher skips every send; the
// rest of the application keeps working.
func (m MailConfig) Configured() bool {
	switch m.Provider {
	case "smtp":
		return m.SMTPHost != "" && m.SMTPPort != 0 && m.SMTPUser != "" && m.SMTPPass != ""
	case "ses":
		return m.SESRegion != "" && m.SESAccessKeyID != "" && m.SESSecretAccessKey != ""
	}
	return false
}

// Config holds all configuration for the application.
type Config struct {
	Environment        string
	Port               string
	BaseURL            string
	DataDir            string
	StorageDriver      string // "file" or "postgres"
	DBUrl              string
	CORSAllowedOrigins []string
	ContextTimeout     time.Duration
	Mail               MailConfig
}

// Load resolves configuration from the process environment first and a .env
// file second. Missing mail settings are never an error; they leave the
// notification dispatcher unconfigured.
func Load() (*Config, error) {
	r := NewResolver(EnvSource(), DotenvSource(".env"))
	return FromResolver(r), nil
}

// FromResolver builds a Config from an explicit resolver. Tests use it to
// exercise source precedence without touching the process environment.
func FromResolver(r *Resolver) *Config {
	cfg := &Config{
		Environment:    r.Get("GO_ENV", "development"),
		Port:           r.Get("PORT", "8080"),
		BaseURL:        r.Get("APP_BASE_URL", "http://localhost:8080"),
		DataDir:        r.Get("DATA_DIR", "invitations"),
		StorageDriver:  r.Get("STORAGE_DRIVER", "file"),
		DBUrl:          r.Get("DATABASE_URL", ""),
		ContextTimeout: r.GetDuration("CONTEXT_TIMEOUT", 10*time.Second),
		Mail: MailConfig{
			Provider:              r.Get("MAIL_PROVIDER", ""),
			FromAddress:           r.Get("MAIL_FROM_ADDRESS", ""),
			FromName:              r.Get("MAIL_FROM_NAME", ""),
			ManagerAddress:        r.Get("MANAGER_EMAIL", ""),
			SendTimeout:           r.GetDuration("MAIL_SEND_TIMEOUT", 15*time.Second),
			SMTPHost:              r.Get("SMTP_HOST", ""),
			SMTPPort:              r.GetInt("SMTP_PORT", 0),
			SMTPUser:              r.Get("SMTP_USER", ""),
			SMTPPass:              r.Get("SMTP_PASS", ""),
			SMTPTLS:               r.GetBool("SMTP_TLS", true),
			SESRegion:             r.Get("SES_REGION", ""),
			SESAccessKeyID:        r.Get("SES_ACCESS_KEY_ID", ""),
			SESSecretAccessKey:    r.Get("SES_SECRET_ACCESS_KEY", ""),
			SESInsecureSkipVerify: r.GetBool("SES_INSECURE_SKIP_VERIFY", false),
		},
	}
	if origins := r.Get("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}
	// SMTP credentials alone are enough to select the provider, matching the
	// common deployment where only SMTP_* variables are set.
	if cfg.Mail.Provider == "" {
		if cfg.Mail.SMTPUser != "" && cfg.Mail.SMTPPass != "" {
			cfg.Mail.Provider = "smtp"
		} else {
			cfg.Mail.Provider = "noop"
		}
	}
	if cfg.Mail.FromAddress == "" {
		cfg.Mail.FromAddress = cfg.Mail.SMTPUser
	}
	return cfg
}

// Package config reads process configuration from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"chemical-leads-api/internal/mail"
	"chemical-leads-api/pkg/utils"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Logger      LoggerConfig
	ContactMail ContactMailConfig
	RFQMail     RFQMailConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// URL is a postgres DSN. Empty selects the in-memory catalog.
	URL      string
	SeedFile string
}

type CacheConfig struct {
	// RedisURL empty disables search caching.
	RedisURL string
	DB       int
	TTL      time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LoggerConfig struct {
	Mode       string
	FileEnable bool
	Filename   string
}

// ContactMailConfig is the transport used by the contact form.
type ContactMailConfig struct {
	SMTP  mail.SMTPConfig
	From  string
	To    string
	Brand string
}

// Missing names the required contact variables that are unset.
func (c ContactMailConfig) Missing() []string {
	return missing(c.SMTP, "SMTP_HOST", "SMTP_USER", "SMTP_PASSWORD")
}

// RFQMailConfig is the transport used by quote requests. It is configured
// independently of ContactMailConfig.
type RFQMailConfig struct {
	SMTP mail.SMTPConfig
	From string
	To   string
}

// Missing names the required RFQ variables that are unset.
func (c RFQMailConfig) Missing() []string {
	return missing(c.SMTP, "EMAIL_HOST", "EMAIL_USER", "EMAIL_PASSWORD")
}

func missing(smtp mail.SMTPConfig, hostVar, userVar, passwordVar string) []string {
	var out []string
	if smtp.Host == "" {
		out = append(out, hostVar)
	}
	if smtp.Username == "" {
		out = append(out, userVar)
	}
	if smtp.Password == "" {
		out = append(out, passwordVar)
	}
	return out
}

// LoadDotenv loads .env into the process environment. It reports whether a
// file was found.
func LoadDotenv() bool {
	return godotenv.Load() == nil
}

// Load reads the configuration from the process environment.
func Load() *Config {
	return FromLookup(os.Getenv)
}

// FromLookup builds a Config using getenv for every variable.
func FromLookup(getenv func(string) string) *Config {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	smtpUser := env("SMTP_USER", "")
	emailUser := env("EMAIL_USER", "")

	return &Config{
		Server: ServerConfig{
			Port:            env("PORT", "8085"),
			AllowedOrigin:   env("CORS_ALLOWED_ORIGIN", "*"),
			ShutdownTimeout: time.Duration(cast.ToInt(env("SHUTDOWN_TIMEOUT", "10"))) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      env("DATABASE_URL", ""),
			SeedFile: env("CATALOG_SEED_FILE", ""),
		},
		Cache: CacheConfig{
			RedisURL: env("REDIS_URL", ""),
			DB:       cast.ToInt(env("REDIS_DB", "0")),
			TTL:      time.Duration(cast.ToInt(env("CACHE_TTL", "600"))) * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:   cast.ToFloat64(env("RATE_LIMIT_RPS", "2")),
			Burst: cast.ToInt(env("RATE_LIMIT_BURST", "5")),
		},
		Logger: LoggerConfig{
			Mode:       env("LOG_MODE", "development"),
			FileEnable: cast.ToBool(env("LOG_FILE_ENABLE", "false")),
			Filename:   env("LOG_FILENAME", "logs/server.log"),
		},
		ContactMail: ContactMailConfig{
			SMTP: mail.SMTPConfig{
				Host:     env("SMTP_HOST", ""),
				Port:     port(env("SMTP_PORT", "")),
				Username: smtpUser,
				Password: env("SMTP_PASSWORD", ""),
			},
			From:  utils.FirstNonEmpty(env("CONTACT_FROM_EMAIL", ""), smtpUser),
			To:    utils.FirstNonEmpty(env("CONTACT_TO_EMAIL", ""), smtpUser),
			Brand: env("BRAND_NAME", "Our team"),
		},
		RFQMail: RFQMailConfig{
			SMTP: mail.SMTPConfig{
				Host:     env("EMAIL_HOST", ""),
				Port:     port(env("EMAIL_PORT", "")),
				Username: emailUser,
				Password: env("EMAIL_PASSWORD", ""),
			},
			From: utils.FirstNonEmpty(env("RFQ_FROM_EMAIL", ""), emailUser),
			To:   utils.FirstNonEmpty(env("RFQ_TO_EMAIL", ""), emailUser),
		},
	}
}

// port parses an SMTP port, falling back to 587 for blank or invalid values.
func port(v string) int {
	p, err := cast.ToIntE(v)
	if err != nil || p <= 0 || p > 65535 {
		return 587
	}
	return p
}

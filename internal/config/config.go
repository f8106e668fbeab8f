package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	// StoreLatency adds an artificial delay to every in-memory store call,
	// useful when exercising the UI against realistic response times.
	StoreLatency time.Duration `env:"STORE_LATENCY" envDefault:"0"`

	// StrictRoomRelease refuses manual room status overrides that would
	// contradict a checked-in reservation. Off by default so front desk
	// staff can treat direct status edits as a housekeeping override.
	StrictRoomRelease bool `env:"STRICT_ROOM_RELEASE" envDefault:"false"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	HousekeepingCron string `env:"HOUSEKEEPING_CRON" envDefault:"0 2 * * *"`

	SendGridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `env:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `env:"SENDGRID_FROM_NAME" envDefault:"FrontDesk Hotel"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) EmailEnabled() bool {
	return c.SendGridAPIKey != "" && c.SendGridFromEmail != ""
}

func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

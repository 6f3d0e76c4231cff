// Package config loads the process configuration from the environment.
// Every variable carries the IOU_ prefix, e.g. IOU_ADDR or IOU_DB_PATH.
package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

// Feature flag names understood by the Features set.
const (
	FeatureCustomCategories = "custom_categories"
	FeatureReminders        = "reminders"
	FeatureAds              = "ads"
)

// SMTP configures the optional email delivery channel for reminders.
// Host left empty means email delivery is not configured.
type SMTP struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM"`
	To       string `envconfig:"TO"`
}

// Config is the full process configuration.
type Config struct {
	Addr         string        `envconfig:"ADDR" default:":8080"`
	DBPath       string        `envconfig:"DB_PATH" default:"./data/iou.db"`
	JWTSecret    string        `envconfig:"JWT_SECRET"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	Features     []string      `envconfig:"FEATURES" default:"custom_categories,reminders,ads"`
	NotifyMode   string        `envconfig:"NOTIFY_MODE" default:"log"`
	ContactsPath string        `envconfig:"CONTACTS_PATH"`
	SMTP         SMTP          `envconfig:"SMTP"`
}

// Load reads the configuration from the environment. A missing JWT secret
// gets a random per-process value, which invalidates sessions on restart.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("iou", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.NotifyMode != "off" && cfg.NotifyMode != "log" && cfg.NotifyMode != "email" {
		return nil, fmt.Errorf("invalid IOU_NOTIFY_MODE %q (want off, log or email)", cfg.NotifyMode)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.New().String()
	}
	return &cfg, nil
}

// HasFeature reports whether the named feature flag is enabled.
func (c *Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}

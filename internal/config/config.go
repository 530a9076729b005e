package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface. The MongoDB,
// Sheets and Push blocks are optional: the matching feature stays disabled
// when the block is empty.
type Config struct {
	Server   ServerConfig
	Uploads  UploadsConfig
	Schedule ScheduleConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	Push     PushConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// UploadsConfig holds photo upload options.
type UploadsConfig struct {
	Dir string
}

// ScheduleConfig holds the nightly job settings.
type ScheduleConfig struct {
	CronSchedule string
	Timezone     string
}

// MongoDBConfig holds settings for the snapshot archive.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether snapshot archiving is configured.
func (c MongoDBConfig) Enabled() bool { return c.URI != "" }

// SheetsConfig contains configuration required to export herd data to a
// Google Sheet.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the sheet export is configured.
func (c SheetsConfig) Enabled() bool { return c.CredentialsPath != "" || c.SpreadsheetID != "" }

// PushConfig holds the reminder webhook settings.
type PushConfig struct {
	URL   string
	Token string
}

// Enabled reports whether reminder push delivery is configured.
func (c PushConfig) Enabled() bool { return c.URL != "" }

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Uploads: UploadsConfig{
			Dir: getenvWithDefault("UPLOADS_DIR", "uploads"),
		},
		Schedule: ScheduleConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Local"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "rabbitry"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
		},
		Push: PushConfig{
			URL:   os.Getenv("PUSH_WEBHOOK_URL"),
			Token: os.Getenv("PUSH_WEBHOOK_TOKEN"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures required fields are populated and optional blocks are
// either complete or untouched.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Uploads.Dir == "" {
		return errors.New("UPLOADS_DIR must not be empty")
	}

	if c.Schedule.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	if c.Sheets.Enabled() {
		switch {
		case c.Sheets.CredentialsPath == "":
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when sheet export is configured")
		case c.Sheets.SpreadsheetID == "":
			return errors.New("GOOGLE_SHEET_EXPORT_ID must be provided when sheet export is configured")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

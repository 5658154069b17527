package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"smart-task-manager/internal/model"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Database   DatabaseConfig
	Classifier ClassifierConfig

	Brevo          BrevoConfig
	Reminder       ReminderConfig
	Digest         DigestConfig
	GoogleCalendar GoogleCalendarConfig

	Timezone string
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// ClassifierConfig points at optional naive-bayes model artifacts. When
// missing the classifier degrades to keyword rules.
type ClassifierConfig struct {
	ModelPath string
	VocabPath string
}

type BrevoConfig struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

type ReminderConfig struct {
	DefaultRecipient   string
	DefaultLeadMinutes int
}

type DigestConfig struct {
	Enabled   bool
	Time      string // HH:MM, local to Timezone
	Recipient string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	cfg.Classifier.ModelPath = viper.GetString("classifier.model_path")
	cfg.Classifier.VocabPath = viper.GetString("classifier.vocab_path")

	cfg.Brevo.APIKey = viper.GetString("brevo.api_key")
	cfg.Brevo.SenderEmail = viper.GetString("brevo.sender_email")
	cfg.Brevo.SenderName = viper.GetString("brevo.sender_name")
	if brevoKey := viper.GetString("brevo_api_key"); brevoKey != "" {
		cfg.Brevo.APIKey = brevoKey
	}

	cfg.Reminder.DefaultRecipient = viper.GetString("reminder.default_recipient")
	cfg.Reminder.DefaultLeadMinutes = viper.GetInt("reminder.default_lead_minutes")

	cfg.Digest.Enabled = viper.GetBool("digest.enabled")
	cfg.Digest.Time = viper.GetString("digest.time")
	cfg.Digest.Recipient = viper.GetString("digest.recipient")
	if cfg.Digest.Recipient == "" {
		cfg.Digest.Recipient = cfg.Reminder.DefaultRecipient
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Timezone = viper.GetString("timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "tasks.db")
	viper.SetDefault("reminder.default_lead_minutes", 30)
	viper.SetDefault("digest.enabled", false)
	viper.SetDefault("digest.time", "08:00")
	viper.SetDefault("timezone", "Local")
}

package config

import (
	"fmt"

	"publiflow-backend/internal/database/models"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Secret used by the identity provider to sign session JWTs
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Google Calendar configuration
	GoogleClientID         string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret     string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL      string `mapstructure:"GOOGLE_REDIRECT_URL"`
	GoogleCalendarBaseURL  string `mapstructure:"GOOGLE_CALENDAR_BASE_URL"`
	GoogleAuthURL          string `mapstructure:"GOOGLE_AUTH_URL"`
	GoogleTokenURL         string `mapstructure:"GOOGLE_TOKEN_URL"`
	CalendarHTTPTimeoutSec int    `mapstructure:"CALENDAR_HTTP_TIMEOUT_SEC"`

	// Idea board configuration
	IdeaStageScheme string `mapstructure:"IDEA_STAGE_SCHEME"`

	// Public report rate limiting
	ReportRateLimitRPS   float64 `mapstructure:"REPORT_RATE_LIMIT_RPS"`
	ReportRateLimitBurst int     `mapstructure:"REPORT_RATE_LIMIT_BURST"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "publiflow")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Google defaults
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:7008/api/v1/calendar/google/callback")
	viper.SetDefault("GOOGLE_CALENDAR_BASE_URL", "https://www.googleapis.com/calendar/v3")
	viper.SetDefault("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	// 0 keeps the http.Client default (no timeout)
	viper.SetDefault("CALENDAR_HTTP_TIMEOUT_SEC", 0)

	viper.SetDefault("IDEA_STAGE_SCHEME", string(models.IdeaStageSchemeWorkflow))

	viper.SetDefault("REPORT_RATE_LIMIT_RPS", 5)
	viper.SetDefault("REPORT_RATE_LIMIT_BURST", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if !models.IdeaStageScheme(config.IdeaStageScheme).IsValid() {
		return fmt.Errorf("unknown IDEA_STAGE_SCHEME %q", config.IdeaStageScheme)
	}

	return nil
}

// StageScheme returns the configured idea stage scheme
func (c *Config) StageScheme() models.IdeaStageScheme {
	return models.IdeaStageScheme(c.IdeaStageScheme)
}

// HasGoogleCredentials reports whether the Google OAuth client is configured
func (c *Config) HasGoogleCredentials() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

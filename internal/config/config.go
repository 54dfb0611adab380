package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
	Rules    RulesConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AdminConfig holds the bootstrap operator credential
type AdminConfig struct {
	Username string
	Password string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	ManagerTo string
}

// RulesConfig holds the scheduling rule thresholds. These used to live as
// literals inside the rule checks; keeping them here makes every threshold
// overridable per deployment.
type RulesConfig struct {
	MorningCutoffHour int
	WeeklyHoursTarget int
	WeeklyHoursMin    int
	WeeklyHoursMax    int
	WeekendMinSeniors int
	CandidateCap      int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "planning"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "planning"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Admin = AdminConfig{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// SMTP configuration (optional; notifications are skipped when unset)
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:      getEnv("SMTP_HOST", ""),
		Port:      smtpPort,
		Username:  getEnv("SMTP_USERNAME", ""),
		Password:  getEnv("SMTP_PASSWORD", ""),
		From:      getEnv("SMTP_FROM", "planning@krooster.local"),
		ManagerTo: getEnv("SMTP_MANAGER_TO", ""),
	}

	rules, err := loadRules()
	if err != nil {
		return nil, err
	}
	config.Rules = rules

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadRules() (RulesConfig, error) {
	rules := RulesConfig{}

	fields := []struct {
		dst      *int
		key      string
		fallback string
	}{
		{&rules.MorningCutoffHour, "RULE_MORNING_CUTOFF_HOUR", "16"},
		{&rules.WeeklyHoursTarget, "RULE_WEEKLY_HOURS_TARGET", "48"},
		{&rules.WeeklyHoursMin, "RULE_WEEKLY_HOURS_MIN", "40"},
		{&rules.WeeklyHoursMax, "RULE_WEEKLY_HOURS_MAX", "52"},
		{&rules.WeekendMinSeniors, "RULE_WEEKEND_MIN_SENIORS", "2"},
		{&rules.CandidateCap, "RULE_CANDIDATE_CAP", "3"},
	}

	for _, f := range fields {
		v, err := strconv.Atoi(getEnv(f.key, f.fallback))
		if err != nil {
			return RulesConfig{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = v
	}

	return rules, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Rules.MorningCutoffHour < 0 || c.Rules.MorningCutoffHour > 23 {
		return fmt.Errorf("RULE_MORNING_CUTOFF_HOUR must be between 0 and 23")
	}
	if c.Rules.WeeklyHoursMin > c.Rules.WeeklyHoursMax {
		return fmt.Errorf("RULE_WEEKLY_HOURS_MIN must not exceed RULE_WEEKLY_HOURS_MAX")
	}
	if c.Rules.CandidateCap <= 0 {
		return fmt.Errorf("RULE_CANDIDATE_CAP must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

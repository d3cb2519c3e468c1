package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration sourced from the environment, with an
// optional .env file for local development.
type Config struct {
	Environment string
	Port        int
	DatabaseURL string
	CORSOrigins []string
	JWT         JWTConfig
	Admin       AdminConfig
}

// JWTConfig holds the token signing parameters. The secret is loaded once at
// startup and never rotated during the process lifetime.
type JWTConfig struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// Lifetime returns the token validity window.
func (j JWTConfig) Lifetime() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// AdminConfig describes the admin account ensured at startup.
type AdminConfig struct {
	Email       string
	Password    string
	DisplayName string
}

// Load reads configuration and validates the required values.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// A missing .env is fine; plain environment variables still apply.
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("JWT_ISSUER", "bloghub")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("ADMIN_EMAIL", "admin@bloghub.local")
	v.SetDefault("ADMIN_PASSWORD", "Admin@123")
	v.SetDefault("ADMIN_DISPLAY_NAME", "Admin")

	cfg := Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetInt("PORT"),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		CORSOrigins: parseCSV(v.GetString("CORS_ALLOWED_ORIGINS")),
		JWT: JWTConfig{
			Secret:            strings.TrimSpace(v.GetString("JWT_SECRET")),
			Issuer:            v.GetString("JWT_ISSUER"),
			ExpirationMinutes: v.GetInt("JWT_EXPIRATION_MINUTES"),
		},
		Admin: AdminConfig{
			Email:       v.GetString("ADMIN_EMAIL"),
			Password:    v.GetString("ADMIN_PASSWORD"),
			DisplayName: v.GetString("ADMIN_DISPLAY_NAME"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.ExpirationMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MINUTES must be positive, got %d", c.JWT.ExpirationMinutes)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the process runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	LogLevel    string
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBTimeZone  string
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_TIMEZONE", "UTC")

	cfg := &Config{
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBHost:      v.GetString("DB_HOST"),
		DBUser:      v.GetString("DB_USER"),
		DBPassword:  v.GetString("DB_PASSWORD"),
		DBName:      v.GetString("DB_NAME"),
		DBPort:      v.GetString("DB_PORT"),
		DBTimeZone:  v.GetString("DB_TIMEZONE"),
	}

	if cfg.DatabaseURL == "" && cfg.DBName == "" {
		return nil, fmt.Errorf("database config missing: set DATABASE_URL or DB_NAME")
	}
	return cfg, nil
}

// DSN returns the postgres connection string, preferring DATABASE_URL when
// set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBTimeZone,
	)
}

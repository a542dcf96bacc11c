package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPAddr string
	Admin    AdminConfig
	Database DatabaseConfig
}

type AdminConfig struct {
	Username string
	Password string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "innoquest"),
			Password: getEnv("ADMIN_PASSWORD", "innoquest2025"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "innoquest"),
			Password: getEnv("DB_PASSWORD", "innoquest"),
			DBName:   getEnv("DB_NAME", "hackathon"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	MongoURL          string
	DBName            string
	Port              string
	APIPrefix         string
	CORSOrigins       []string // From CORS_ORIGINS (comma-separated); "*" allows any origin
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	NotificationEmail string // Operator address that receives submission notifications
}

func Load() (*Config, error) {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			smtpPort = p
		}
	}

	return &Config{
		MongoURL:          mongoURL,
		DBName:            dbName,
		Port:              getEnv("PORT", "8080"),
		APIPrefix:         getEnv("API_PREFIX", "/api"),
		CORSOrigins:       parseOrigins(getEnv("CORS_ORIGINS", "*")),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          smtpPort,
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", "abhiii.webdesign@gmail.com"),
	}, nil
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

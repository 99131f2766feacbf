package config

import (
	"os"
	"strconv"
	"time"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret   string
	JWTIssuer   string
	TokenExpiry time.Duration

	CORSOrigins string

	ResendAPIKey     string
	EmailFromAddress string
	EmailFromName    string

	WhatsAppBotURL string

	// "local" or "r2"
	StorageDriver string
	UploadsDir    string
	R2            R2Config
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "loreomah"),
		TokenExpiry: time.Duration(getEnvInt("TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Cafe Loreomah"),

		WhatsAppBotURL: getEnv("WHATSAPP_BOT_URL", "http://localhost:3001"),

		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadsDir:    getEnv("UPLOADS_DIR", "uploads"),
	}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

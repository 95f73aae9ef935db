package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Identity IdentityConfig
	Cron     CronConfig
	Legal    LegalConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	EventTopic         string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type IdentityConfig struct {
	AdminURL   string
	ServiceKey string
}

type CronConfig struct {
	Secret         string
	RateLimit      int
	RateWindowSecs int
	MinRunGapSecs  int
}

type LegalConfig struct {
	UserDeletionDays   int
	ChurchDeletionDays int
	WarningWindowDays  int
	EmailBatchSize     int
	EmailBatchPauseMs  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			EventTopic:         getEnv("LEGAL_EVENT_TOPIC_NAME", "LEGAL_EVENTS"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ChurchHub"),
		},
		Identity: IdentityConfig{
			AdminURL:   getEnv("IDENTITY_ADMIN_URL", ""),
			ServiceKey: getEnv("IDENTITY_SERVICE_KEY", ""),
		},
		Cron: CronConfig{
			// Empty secret means the cron endpoints fail closed with 500.
			Secret:         getEnv("CRON_SECRET", ""),
			RateLimit:      getEnvAsInt("CRON_RATE_LIMIT", 10),
			RateWindowSecs: getEnvAsInt("CRON_RATE_WINDOW_SECONDS", 60),
			MinRunGapSecs:  getEnvAsInt("CRON_MIN_RUN_GAP_SECONDS", 60),
		},
		Legal: LegalConfig{
			UserDeletionDays:   getEnvAsInt("LEGAL_USER_DELETION_DAYS", 14),
			ChurchDeletionDays: getEnvAsInt("LEGAL_CHURCH_DELETION_DAYS", 30),
			WarningWindowDays:  getEnvAsInt("LEGAL_WARNING_WINDOW_DAYS", 3),
			EmailBatchSize:     getEnvAsInt("LEGAL_EMAIL_BATCH_SIZE", 10),
			EmailBatchPauseMs:  getEnvAsInt("LEGAL_EMAIL_BATCH_PAUSE_MS", 500),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

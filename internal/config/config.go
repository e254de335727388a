package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Queue    QueueConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	JobLogFilePath     string
	CorsAllowedOrigins string
	ServiceName        string
	Version            string
}

type StorageConfig struct {
	RedisURL   string // empty runs on the process-local map
	TTLSeconds int    // 0 stores keys without expiry
}

type DatabaseConfig struct {
	Connection string // empty disables the relational mirror
}

type QueueConfig struct {
	NatsURL string // empty keeps jobs in-process
	Topic   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			JobLogFilePath:     getEnv("JOB_LOG_FILE_PATH", "logs/jobs.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			ServiceName:        getEnv("SERVICE_NAME", "chitty-gateway"),
			Version:            getEnv("SERVICE_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			RedisURL:   getEnv("REDIS_URL", ""),
			TTLSeconds: getEnvAsInt("KV_TTL_SECONDS", 0),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Queue: QueueConfig{
			NatsURL: getEnv("NATS_URL", ""),
			Topic:   getEnv("QUEUE_TOPIC", "chitty.jobs"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

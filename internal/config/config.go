package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL string

	PhotoStorage    string
	UploadDir       string
	MaxPhotoSizeMB  int64
	PublicURLPrefix string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	CORSOrigins string

	SeedData bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		PhotoStorage:    getEnv("PHOTO_STORAGE", "local"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads/vehicle-photos"),
		MaxPhotoSizeMB:  getInt64Env("MAX_PHOTO_SIZE_MB", 10),
		PublicURLPrefix: getEnv("PUBLIC_URL_PREFIX", "/api/v1/vehicles"),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "vehicle-photos"),
		MinIOUseSSL:    getBoolEnv("MINIO_USE_SSL", false),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SeedData: getBoolEnv("SEED_DATA", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

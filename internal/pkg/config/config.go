package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Upload    UploadConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Transcode TranscodeConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	TempDir     string
	MaxFileSize int64 // bytes
}

// StorageConfig selects the storage backend once at startup. Mode is either
// "local" or "s3"; the unused half of the struct is ignored.
type StorageConfig struct {
	Mode       string
	LocalRoot  string
	S3Bucket   string
	S3Region   string
	PresignTTL time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host    string
	Port    string
	ListTTL time.Duration
}

type TranscodeConfig struct {
	Workers int
	Timeout time.Duration
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upload: UploadConfig{
			TempDir:     getEnv("UPLOAD_TEMP_DIR", "temp_uploads"),
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 2*1024*1024*1024), // 2GB
		},
		Storage: StorageConfig{
			Mode:       getEnv("STORAGE_MODE", "local"),
			LocalRoot:  getEnv("STORAGE_LOCAL_ROOT", "storage"),
			S3Bucket:   getEnv("STORAGE_S3_BUCKET", ""),
			S3Region:   getEnv("STORAGE_S3_REGION", "ap-southeast-2"),
			PresignTTL: getEnvAsDuration("STORAGE_PRESIGN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "video_service"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:    getEnv("REDIS_HOST", ""), // empty disables the listing cache
			Port:    getEnv("REDIS_PORT", "6379"),
			ListTTL: getEnvAsDuration("REDIS_LIST_TTL", 30*time.Second),
		},
		Transcode: TranscodeConfig{
			Workers: getEnvAsInt("TRANSCODE_WORKERS", 2),
			Timeout: getEnvAsDuration("TRANSCODE_TIMEOUT", 10*time.Minute),
		},
	}

	if err := os.MkdirAll(config.Upload.TempDir, 0755); err != nil {
		panic(err)
	}
	if config.Storage.Mode == "local" {
		if err := os.MkdirAll(config.Storage.LocalRoot, 0755); err != nil {
			panic(err)
		}
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

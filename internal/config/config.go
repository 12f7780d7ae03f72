package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig controls the admin session cookie and its signing secret.
type AuthConfig struct {
	Secret       string
	CookieName   string
	SessionTTL   time.Duration
	SecureCookie bool
}

// StorageConfig holds the asset-host (MinIO) connection settings.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

type CacheConfig struct {
	SnapshotTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "portfolio")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("SESSION_COOKIE_NAME", "admin_token")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("MINIO_BUCKET", "portfolio")
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("SNAPSHOT_CACHE_TTL_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      getEnvOrPanic("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Auth: AuthConfig{
			Secret:       os.Getenv("JWT_SECRET"),
			CookieName:   viper.GetString("SESSION_COOKIE_NAME"),
			SessionTTL:   time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			SecureCookie: viper.GetString("SERVER_ENVIRONMENT") == "production",
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Cache: CacheConfig{
			SnapshotTTL: time.Duration(viper.GetInt("SNAPSHOT_CACHE_TTL_SECONDS")) * time.Second,
		},
	}

	// Basic validation
	if cfg.Auth.Secret == "" {
		log.Println("WARNING: JWT_SECRET is not set; set a secure value in production")
	}

	return cfg, nil
}

func getEnvOrPanic(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}

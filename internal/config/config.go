package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"reel/internal/logging"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

type Server struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DB struct {
	Driver          string
	DbHOST          string
	DbPORT          string
	DbUSER          string
	DbPASSWORD      string
	DbNAME          string
	DbSSLMODE       string
	DbPATH          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoSchema      bool
}

type MinIO struct {
	Enabled    bool
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string

	// breaker settings for object storage calls
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

type Log struct {
	Level  string
	Format string
	Caller bool
}

type HTTP struct {
	AllowedOrigins   []string
	RateLimit        int
	RateLimitWindow  time.Duration
	RateLimitEnabled bool
}

type Config struct {
	Server        Server
	DB            DB
	MinIO         MinIO
	Log           Log
	HTTP          HTTP
	MaxUploadSize int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func LoadServer() Server {
	return Server{
		Port:            getEnvAsInt("SERVER_PORT", 4000),
		ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func LoadDB() DB {
	return DB{
		Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DbHOST:          getEnv("DB_HOST", "localhost"),
		DbPORT:          getEnv("DB_PORT", "5432"),
		DbUSER:          getEnv("DB_USER", "postgres"),
		DbPASSWORD:      getEnv("DB_PASSWORD", "password"),
		DbNAME:          getEnv("DB_NAME", "reel"),
		DbSSLMODE:       getEnv("DB_SSLMODE", "disable"),
		DbPATH:          getEnv("DB_PATH", "reel.db"),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		AutoSchema:      getEnvBool("DB_AUTO_SCHEMA", true),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Enabled:            getEnvBool("MINIO_ENABLED", false),
		Endpoint:           getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:          getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:          getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName:         getEnv("MINIO_BUCKET_NAME", "reel-media"),
		UseSSL:             getEnvBool("MINIO_USE_SSL", false),
		Region:             getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:          getEnv("MINIO_PUBLIC_URL", ""),
		BreakerMaxFailures: uint32(getEnvAsInt("MINIO_BREAKER_MAX_FAILURES", 5)),
		BreakerTimeout:     getEnvAsDuration("MINIO_BREAKER_TIMEOUT", 30*time.Second),
	}
}

func LoadLog() Log {
	return Log{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
		Caller: getEnvBool("LOG_CALLER", false),
	}
}

func LoadHTTP() HTTP {
	return HTTP{
		AllowedOrigins:   getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimit:        getEnvAsInt("RATE_LIMIT_REQUESTS", 300),
		RateLimitWindow:  getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitEnabled: !getEnvBool("RATE_LIMIT_DISABLED", false),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logging.Warn().Msg(".env file not found, using environment variables")
	}

	return &Config{
		Server:        LoadServer(),
		DB:            LoadDB(),
		MinIO:         LoadMinIO(),
		Log:           LoadLog(),
		HTTP:          LoadHTTP(),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "20971520")),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 20 * 1024 * 1024
	}
	return size
}

// Validate reports the first configuration value the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverPgx:
		if c.DB.DbHOST == "" || c.DB.DbNAME == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for driver %q", c.DB.Driver)
		}
	case DriverSQLite:
		if c.DB.DbPATH == "" {
			return fmt.Errorf("DB_PATH is required for driver %q", c.DB.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q", c.DB.Driver)
	}

	if c.MinIO.Enabled && c.MinIO.BucketName == "" {
		return fmt.Errorf("MINIO_BUCKET_NAME is required when MINIO_ENABLED is set")
	}

	if c.HTTP.RateLimitEnabled && (c.HTTP.RateLimit <= 0 || c.HTTP.RateLimitWindow <= 0) {
		return fmt.Errorf("rate limit requires positive RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW")
	}

	return nil
}

// DSN builds the data source name for the configured driver.
func (d DB) DSN() string {
	if d.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", d.DbPATH)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

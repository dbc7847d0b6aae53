package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "EVR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by EVR_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads configs/<env>.yaml from the first matching path and applies
// defaults and environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 30)       // seconds, uploads can be slow on mobile
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("storage.backend", "database")

	v.SetDefault("images.driver", "local")
	v.SetDefault("images.localDir", "./data/images")
	v.SetDefault("images.s3.region", "ap-south-1")

	v.SetDefault("upload.maxImageBytes", 10<<20)
	v.SetDefault("upload.maxPixels", 40_000_000)
	v.SetDefault("upload.maxDimension", 1600)
	v.SetDefault("upload.jpegQuality", 85)
	v.SetDefault("upload.odometerMinKm", 50)
	v.SetDefault("upload.odometerMaxKm", 199)

	v.SetDefault("auth.provider", "none")

	v.SetDefault("cache.backend", "none")
	v.SetDefault("cache.redisAddr", "localhost:6379")
	v.SetDefault("cache.ttl", 60) // seconds

	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("cors.allowMethods", []string{"GET", "POST", "PATCH", "OPTIONS"})
	v.SetDefault("cors.allowHeaders", []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"})
	v.SetDefault("cors.maxAge", 12) // hours

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.rate", 60) // seconds
	v.SetDefault("rateLimit.limit", 20)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.filePath", "./logs/ev-carbon-rewards.log")
	v.SetDefault("logger.maxSizeMb", 100)
	v.SetDefault("logger.maxBackups", 5)
	v.SetDefault("logger.maxAgeDays", 30)

	v.SetDefault("seed.enabled", false)
	v.SetDefault("seed.vehicleType", "E-Rickshaw")
}

// getEnvironment determines the environment to use based on EVR_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over file values.
// Secrets are expected to arrive this way.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"EVR_DB_DRIVER":                 "database.driver",
		"EVR_DB_HOST":                   "database.host",
		"EVR_DB_PORT":                   "database.port",
		"EVR_DB_USERNAME":               "database.username",
		"EVR_DB_PASSWORD":               "database.password",
		"EVR_DB_NAME":                   "database.database",
		"EVR_DB_SSL_MODE":               "database.sslMode",
		"EVR_SERVER_HOST":               "server.host",
		"EVR_SERVER_PORT":               "server.port",
		"EVR_SERVER_MODE":               "server.mode",
		"EVR_STORAGE_BACKEND":           "storage.backend",
		"EVR_IMAGES_DRIVER":             "images.driver",
		"EVR_IMAGES_LOCAL_DIR":          "images.localDir",
		"EVR_S3_BUCKET":                 "images.s3.bucket",
		"EVR_S3_REGION":                 "images.s3.region",
		"EVR_S3_ENDPOINT":               "images.s3.endpoint",
		"EVR_S3_ACCESS_KEY_ID":          "images.s3.accessKeyId",
		"EVR_S3_SECRET_ACCESS_KEY":      "images.s3.secretAccessKey",
		"EVR_AUTH_PROVIDER":             "auth.provider",
		"EVR_AUTH_JWT_SECRET":           "auth.jwtSecret",
		"EVR_AUTH_JWT_ISSUER":           "auth.jwtIssuer",
		"EVR_FIREBASE_PROJECT_ID":       "auth.firebaseProjectId",
		"EVR_FIREBASE_CREDENTIALS_FILE": "auth.firebaseCredentialsFile",
		"EVR_CACHE_BACKEND":             "cache.backend",
		"EVR_REDIS_ADDR":                "cache.redisAddr",
		"EVR_REDIS_PASSWORD":            "cache.redisPassword",
		"EVR_LOGGER_LEVEL":              "logger.level",
		"EVR_LOGGER_OUTPUT":             "logger.output",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"EVR_DB_MAX_OPEN_CONNS":        "database.maxOpenConns",
		"EVR_DB_MAX_IDLE_CONNS":        "database.maxIdleConns",
		"EVR_DB_QUERY_TIMEOUT_SECONDS": "database.queryTimeout",
		"EVR_REDIS_DB":                 "cache.redisDb",
		"EVR_CACHE_TTL_SECONDS":        "cache.ttl",
		"EVR_RATE_LIMIT_PER_WINDOW":    "rateLimit.limit",
		"EVR_UPLOAD_MAX_IMAGE_BYTES":   "upload.maxImageBytes",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	if origins := os.Getenv("EVR_CORS_ALLOW_ORIGINS"); origins != "" {
		v.Set("cors.allowOrigins", splitList(origins))
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Cache.TTL = time.Duration(config.Cache.TTL) * time.Second
	config.CORS.MaxAge = time.Duration(config.CORS.MaxAge) * time.Hour
	config.RateLimit.Rate = time.Duration(config.RateLimit.Rate) * time.Second
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "memory":
	case "database":
		switch c.Database.Driver {
		case "postgres", "mysql", "sqlite":
		default:
			return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported storage backend: %q", c.Storage.Backend)
	}

	switch c.Images.Driver {
	case "local":
		if c.Images.LocalDir == "" {
			return errors.New("images.localDir is required for the local driver")
		}
	case "s3":
		if c.Images.S3.Bucket == "" {
			return errors.New("images.s3.bucket is required for the s3 driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported images driver: %q", c.Images.Driver)
	}

	switch c.Auth.Provider {
	case "none", "firebase":
	case "jwt":
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwtSecret is required for the jwt provider")
		}
	default:
		return fmt.Errorf("unsupported auth provider: %q", c.Auth.Provider)
	}

	switch c.Cache.Backend {
	case "none", "redis":
	default:
		return fmt.Errorf("unsupported cache backend: %q", c.Cache.Backend)
	}

	if c.Upload.MaxImageBytes <= 0 {
		return fmt.Errorf("upload.maxImageBytes must be positive, got: %d", c.Upload.MaxImageBytes)
	}
	if c.Upload.MaxDimension <= 0 {
		return fmt.Errorf("upload.maxDimension must be positive, got: %d", c.Upload.MaxDimension)
	}
	if c.Upload.OdometerMinKm < 0 || c.Upload.OdometerMinKm > c.Upload.OdometerMaxKm {
		return fmt.Errorf("invalid odometer range [%d, %d]", c.Upload.OdometerMinKm, c.Upload.OdometerMaxKm)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Limit == 0) {
		return errors.New("rateLimit.rate and rateLimit.limit must be positive when enabled")
	}

	return nil
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

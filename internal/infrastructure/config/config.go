package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Storage     StorageConfig   `mapstructure:"storage"`
	Images      ImagesConfig    `mapstructure:"images"`
	Upload      UploadConfig    `mapstructure:"upload"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Cache       CacheConfig     `mapstructure:"cache"`
	CORS        CORSConfig      `mapstructure:"cors"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Seed        SeedConfig      `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	Mode              string        `mapstructure:"mode"`              // gin mode: debug, release, test
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, mysql, sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // database, memory
}

// ImagesConfig selects where uploaded images are written
type ImagesConfig struct {
	Driver   string   `mapstructure:"driver"` // local, s3, memory
	LocalDir string   `mapstructure:"localDir"`
	S3       S3Config `mapstructure:"s3"`
}

// S3Config contains the bucket settings of the s3 image driver
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	UsePathStyle    bool   `mapstructure:"usePathStyle"`
}

// UploadConfig bounds and shapes odometer uploads
type UploadConfig struct {
	MaxImageBytes int64 `mapstructure:"maxImageBytes"`
	MaxPixels     int64 `mapstructure:"maxPixels"` // width*height before decoding
	MaxDimension  int   `mapstructure:"maxDimension"`
	JPEGQuality   int   `mapstructure:"jpegQuality"`
	OdometerMinKm int64 `mapstructure:"odometerMinKm"`
	OdometerMaxKm int64 `mapstructure:"odometerMaxKm"`
}

// AuthConfig selects the identity provider
type AuthConfig struct {
	Provider                string `mapstructure:"provider"` // none, jwt, firebase
	JWTSecret               string `mapstructure:"jwtSecret"`
	JWTIssuer               string `mapstructure:"jwtIssuer"`
	FirebaseProjectID       string `mapstructure:"firebaseProjectId"`
	FirebaseCredentialsFile string `mapstructure:"firebaseCredentialsFile"`
}

// CacheConfig contains the stats cache settings
type CacheConfig struct {
	Backend       string        `mapstructure:"backend"` // redis, none
	RedisAddr     string        `mapstructure:"redisAddr"`
	RedisPassword string        `mapstructure:"redisPassword"`
	RedisDB       int           `mapstructure:"redisDb"`
	TTL           time.Duration `mapstructure:"ttl"` // seconds
}

// CORSConfig contains cross-origin settings for the mobile and web clients
type CORSConfig struct {
	AllowOrigins     []string      `mapstructure:"allowOrigins"`
	AllowMethods     []string      `mapstructure:"allowMethods"`
	AllowHeaders     []string      `mapstructure:"allowHeaders"`
	AllowCredentials bool          `mapstructure:"allowCredentials"`
	MaxAge           time.Duration `mapstructure:"maxAge"` // hours
}

// RateLimitConfig limits upload submissions per client
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Rate    time.Duration `mapstructure:"rate"` // seconds
	Limit   uint          `mapstructure:"limit"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json, console
	Output     string `mapstructure:"output"` // stdout, file, both
	FilePath   string `mapstructure:"filePath"`
	MaxSizeMB  int    `mapstructure:"maxSizeMb"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
	Compress   bool   `mapstructure:"compress"`
}

// SeedConfig describes the optional demo user created at startup
type SeedConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Email       string `mapstructure:"email"`
	Name        string `mapstructure:"name"`
	VehicleType string `mapstructure:"vehicleType"`
}

// Address returns the listen address of the HTTP server
func (s ServerConfig) Address() string {
	return joinHostPort(s.Host, s.Port)
}

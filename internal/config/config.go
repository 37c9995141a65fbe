package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Quiz      QuizConfig
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`

	// Runtime flags, set from the command line rather than the config file.
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port      string
	Mode      string
	StaticDir string `mapstructure:"static_dir"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioRegion   string `mapstructure:"minio_region"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type QuizConfig struct {
	QuestionCount int `mapstructure:"question_count"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig drives both limiting tiers: the coarse per-IP ceiling and the
// fixed-window violation counter with its escalating bans.
type RateLimitConfig struct {
	MaxRequests    int    `mapstructure:"max_requests"`
	WindowSeconds  int    `mapstructure:"window_seconds"`
	ShortBanMinute int    `mapstructure:"short_ban_minutes"`
	LongBanHours   int    `mapstructure:"long_ban_hours"`
	CeilingPerMin  int    `mapstructure:"ceiling_per_minute"`
	Store          string `mapstructure:"store"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func (c *RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

func (c *RateLimitConfig) ShortBan() time.Duration {
	return time.Duration(c.ShortBanMinute) * time.Minute
}

func (c *RateLimitConfig) LongBan() time.Duration {
	return time.Duration(c.LongBanHours) * time.Hour
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("QUIZ")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("server.static_dir", "STATIC_DIR")

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_region", "MINIO_REGION")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	viper.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	viper.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	viper.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	viper.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Rate limiting
	viper.BindEnv("rate_limit.store", "RATE_LIMIT_STORE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Everything except storage credentials and bucket has a working default.
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.static_dir", "public")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.user", "quiz")
	viper.SetDefault("database.password", "quiz_password")
	viper.SetDefault("database.dbname", "quiz")
	viper.SetDefault("database.charset", "utf8mb4")
	viper.SetDefault("database.parsetime", true)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("quiz.question_count", 20)
	viper.SetDefault("rate_limit.max_requests", 50)
	viper.SetDefault("rate_limit.window_seconds", 50)
	viper.SetDefault("rate_limit.short_ban_minutes", 15)
	viper.SetDefault("rate_limit.long_ban_hours", 24)
	viper.SetDefault("rate_limit.ceiling_per_minute", 100000)
	viper.SetDefault("rate_limit.store", "memory")
	viper.SetDefault("storage.type", "minio")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.RateLimit.MaxRequests <= 0 || cfg.RateLimit.WindowSeconds <= 0 {
		return nil, fmt.Errorf("rate_limit window must be positive (max_requests=%d, window_seconds=%d)",
			cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
	}

	return &cfg, nil
}

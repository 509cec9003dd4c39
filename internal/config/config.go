package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
	DefaultUserAgent = "showfinder/2 (+https://github.com/showfinder/showfinder)"

	// DefaultBaseURL is the root of the TVmaze REST API.
	DefaultBaseURL = "https://api.tvmaze.com"

	// DefaultImageURL is shown for shows that TVmaze has no image for.
	DefaultImageURL = "https://tinyurl.com/tv-missing"
)

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	TVMazeBaseURL         string `mapstructure:"tvmaze_base_url"`
	DefaultImageURL       string `mapstructure:"default_image_url"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1h", etc.
	UserAgent             string `mapstructure:"user_agent"`
	CoalesceRequests      bool   `mapstructure:"coalesce_requests"`
	CircuitBreaker        struct {
		FailureThreshold uint   `mapstructure:"failure_threshold"` // 0 disables the breaker
		Delay            string `mapstructure:"delay"`
	} `mapstructure:"circuit_breaker"`
	Server struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	GRPC struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"grpc"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Session struct {
		Secret string `mapstructure:"secret"`
		MaxAge int    `mapstructure:"max_age"` // seconds
		Secure bool   `mapstructure:"secure"`
	} `mapstructure:"session"`
	ViewStore struct {
		Provider      string `mapstructure:"provider"` // "memory" or "redis"
		Size          int    `mapstructure:"size"`
		TTL           string `mapstructure:"ttl"`
		RedisAddress  string `mapstructure:"redis_address"`
		RedisPassword string `mapstructure:"redis_password"`
		RedisDB       int    `mapstructure:"redis_db"`
	} `mapstructure:"view_store"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
	LogLevel string `mapstructure:"log_level"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.applyFallbacks()

	return &config, nil
}

// setDefaults registers every key so that AutomaticEnv can override nested
// values that are absent from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("tvmaze_base_url", DefaultBaseURL)
	v.SetDefault("default_image_url", DefaultImageURL)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("coalesce_requests", false)
	v.SetDefault("circuit_breaker.failure_threshold", 0)
	v.SetDefault("circuit_breaker.delay", "30s")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.address", "localhost")
	v.SetDefault("grpc.port", 9000)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.max_age", 86400)
	v.SetDefault("session.secure", false)
	v.SetDefault("view_store.provider", "memory")
	v.SetDefault("view_store.size", 1000)
	v.SetDefault("view_store.ttl", "1h")
	v.SetDefault("view_store.redis_address", "localhost:6379")
	v.SetDefault("view_store.redis_password", "")
	v.SetDefault("view_store.redis_db", 0)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("log_level", "info")
}

func (c *Config) applyFallbacks() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.TVMazeBaseURL == "" {
		c.TVMazeBaseURL = DefaultBaseURL
	}
	c.TVMazeBaseURL = strings.TrimRight(c.TVMazeBaseURL, "/")
	if c.DefaultImageURL == "" {
		c.DefaultImageURL = DefaultImageURL
	}
}

// ParseDuration parses a Go duration string, returning fallback when the
// value is empty or invalid. Invalid values are logged.
func ParseDuration(value string, fallback time.Duration, key string) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}

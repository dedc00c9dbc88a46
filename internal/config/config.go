package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the User-Agent sent when subtitle tracks are downloaded directly.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0"

// Subtitle sources for the fetcher wiring.
const (
	SubtitleSourceYtDlp  = "ytdlp"
	SubtitleSourceDirect = "direct"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Defaults struct {
		Language        string `mapstructure:"language"`
		PreferManual    bool   `mapstructure:"prefer_manual"`
		OutputFormat    string `mapstructure:"output_format"`
		IncludeMetadata bool   `mapstructure:"include_metadata"`
	} `mapstructure:"defaults"`
	YtDlp struct {
		Path           string `mapstructure:"path"`            // Empty means look up yt-dlp in PATH
		Timeout        string `mapstructure:"timeout"`         // Go duration string like "2m"
		TempDir        string `mapstructure:"temp_dir"`        // Parent of per-download work directories
		CookiesFile    string `mapstructure:"cookies_file"`    // Default cookies when the request has none
		SubtitleSource string `mapstructure:"subtitle_source"` // "ytdlp" or "direct"
		SubFormat      string `mapstructure:"sub_format"`      // Format asked from yt-dlp, e.g. "vtt/srt/best"
	} `mapstructure:"ytdlp"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s"
	UserAgent             string `mapstructure:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Cache struct {
		Enabled  bool   `mapstructure:"enabled"`
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`     // Maximum number of entries
		TTL      string `mapstructure:"ttl"`      // Go duration string like "1h"
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	configFile   string
	loadOnce     sync.Once
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output.
	// Logs go to stderr so transcripts printed on stdout stay clean.
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// SetConfigFile selects an explicit config file. It must be called before the first GetConfig.
func SetConfigFile(path string) {
	configFile = path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("defaults.language", "en")
	v.SetDefault("defaults.prefer_manual", true)
	v.SetDefault("defaults.output_format", "structured")
	v.SetDefault("defaults.include_metadata", false)
	v.SetDefault("ytdlp.path", "")
	v.SetDefault("ytdlp.timeout", "2m")
	v.SetDefault("ytdlp.temp_dir", "")
	v.SetDefault("ytdlp.cookies_file", "")
	v.SetDefault("ytdlp.subtitle_source", SubtitleSourceYtDlp)
	v.SetDefault("ytdlp.sub_format", "vtt/srt/best")
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.address", "localhost")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.size", 500)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
}

// LoadConfig reads config.yaml from "." or "./config" (or path when non-empty),
// then applies APP_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Add specific environment variable for log level
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &config, nil
}

func configureLogger(config *Config) {
	// Parse and set log level from config
	level := zerolog.InfoLevel // default
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
}

// GetConfig loads the configuration on first use and returns it.
// A config that fails to load is fatal.
func GetConfig() *Config {
	loadOnce.Do(func() {
		config, err := LoadConfig(configFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", configFile).Msg("Failed to load config")
		}
		configureLogger(config)
		globalConfig = config
		logger.Debug().Msg("Configuration loaded successfully")
	})
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

// ParseDuration parses a Go duration string, falling back (with a warning) when it is empty or invalid.
func ParseDuration(name, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str(name, value).Dur("fallback", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}

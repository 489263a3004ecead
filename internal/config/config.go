package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0"

// DefaultMaxSeasons is the safety ceiling on seasons requested from the catalog.
const DefaultMaxSeasons = 9

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	SiteBaseURL           string `mapstructure:"site_base_url"`
	CatalogBaseURL        string `mapstructure:"catalog_base_url"`
	VideosAPIURL          string `mapstructure:"videos_api_url"`
	MediaBaseURL          string `mapstructure:"media_base_url"`
	APITimeout            string `mapstructure:"api_timeout"`    // Go duration string like "30s"
	ClientTimeout         string `mapstructure:"client_timeout"` // Applies to file transfers, "0" disables it
	UserAgent             string `mapstructure:"user_agent"`
	LogLevel              string `mapstructure:"log_level"`
	Catalog               struct {
		MaxSeasons int `mapstructure:"max_seasons"`
		PageSize   int `mapstructure:"page_size"`
	} `mapstructure:"catalog"`
	Download struct {
		VideoExtension    string `mapstructure:"video_extension"`
		SubtitleExtension string `mapstructure:"subtitle_extension"`
	} `mapstructure:"download"`
	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// SetDefaults registers the default value of every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("site_base_url", "https://www.3cat.cat")
	v.SetDefault("catalog_base_url", "https://www.3cat.cat/api/3cat/dades/")
	v.SetDefault("videos_api_url", "https://api.3cat.cat/videos")
	v.SetDefault("media_base_url", "https://dinamics.ccma.cat")
	v.SetDefault("api_timeout", "30s")
	v.SetDefault("client_timeout", "0")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog.max_seasons", DefaultMaxSeasons)
	v.SetDefault("catalog.page_size", 1000)
	v.SetDefault("download.video_extension", "mp4")
	v.SetDefault("download.subtitle_extension", "vtt")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", "localhost")
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("sentry.dsn", "")
}

// LoadConfig reads configuration from an optional YAML file, APP_ prefixed environment
// variables and whatever flags were bound to v beforehand.
// An empty configFile searches for config.yaml in . and ./config.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variable support
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Add specific environment variable for log level
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	SetDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
	if config.Catalog.MaxSeasons <= 0 {
		config.Catalog.MaxSeasons = DefaultMaxSeasons
	}

	return &config, nil
}

// Setup loads the configuration, configures the global log level and stores the result
// for GetUserAgent.
func Setup(v *viper.Viper, configFile string) (*Config, error) {
	config, err := LoadConfig(v, configFile)
	if err != nil {
		return nil, err
	}

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
	globalConfig = config
	return config, nil
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

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Smart input parsing
	SmartInput SmartInputConfig

	// Delivery channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // 0 disables rate limiting
}

type SmartInputConfig struct {
	Timezone       string // IANA name used when a request does not carry one
	MaxInputLength int    // in runes
	CacheSize      int    // parse result cache entries, 0 disables the cache
	NotesEnabled   bool
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	NgrokAPI   string // local ngrok API queried when WebhookURL is empty
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Smart input
	cfg.SmartInput.Timezone = viper.GetString("smart_input.timezone")
	cfg.SmartInput.MaxInputLength = viper.GetInt("smart_input.max_input_length")
	cfg.SmartInput.CacheSize = viper.GetInt("smart_input.cache_size")
	cfg.SmartInput.NotesEnabled = viper.GetBool("smart_input.notes_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 600)

	viper.SetDefault("smart_input.timezone", "UTC")
	viper.SetDefault("smart_input.max_input_length", 500)
	viper.SetDefault("smart_input.cache_size", 4096)
	viper.SetDefault("smart_input.notes_enabled", true)

	viper.SetDefault("telegram.ngrok_api", "http://ngrok:4040")
}

// validate checks the values the service cannot start without.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.SmartInput.MaxInputLength <= 0 {
		return fmt.Errorf("smart_input.max_input_length must be positive, got %d", cfg.SmartInput.MaxInputLength)
	}
	if cfg.SmartInput.CacheSize < 0 {
		return fmt.Errorf("smart_input.cache_size must not be negative, got %d", cfg.SmartInput.CacheSize)
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative, got %d", cfg.RateLimit.PerMin)
	}
	return nil
}

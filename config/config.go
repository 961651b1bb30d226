package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// EcoShop assistant specifics
	Catalog CatalogConfig
	Gemini  GeminiConfig
	Chat    ChatConfig
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

// CatalogConfig points at the EcoShop product REST backend.
type CatalogConfig struct {
	BaseURL string
}

// GeminiConfig holds the generative API settings.
type GeminiConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// ChatConfig tunes the chat domain: session store bounds and the
// per-client message budget.
type ChatConfig struct {
	SessionMax        int
	SessionTTL        time.Duration
	RateLimitPerMin   int
	GenerativeTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Catalog.BaseURL = viper.GetString("catalog.base_url")
	if catalogURL := viper.GetString("catalog_base_url"); catalogURL != "" {
		cfg.Catalog.BaseURL = catalogURL
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if apiKey := viper.GetString("gemini_api_key"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}

	cfg.Chat.SessionMax = viper.GetInt("chat.session_max")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.GenerativeTimeout = viper.GetDuration("chat.generative_timeout")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("catalog.base_url", "http://localhost:5000")

	viper.SetDefault("chat.session_max", 1000)
	viper.SetDefault("chat.session_ttl", 30*time.Minute)
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.generative_timeout", 10*time.Second)
}

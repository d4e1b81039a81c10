package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Coaching engine
	Coach   CoachConfig
	LLM     LLMConfig
	Storage StorageConfig

	// Edge
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
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

// CoachConfig tunes the turn orchestrator and the sampling parameters sent upstream.
type CoachConfig struct {
	// MaxHistoryLength is counted in exchanges (one user turn plus one coach turn).
	MaxHistoryLength int
	Temperature      float64
	TopP             float64
	MaxTokens        int
	RequestTimeout   time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
	// InlineSystem makes the assembler fold the persona into the first user message.
	InlineSystem bool `yaml:"inline_system"`
}

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverNone   = "none"
)

type StorageConfig struct {
	Driver string
	Path   string
}

type AuthConfig struct {
	DevMode  bool
	Required bool
	// Tokens maps a bearer token to the user id it authenticates.
	// Read from a list of {token, user_id} entries since viper lowercases map keys.
	Tokens map[string]string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

// LoadFile reads configuration from an explicit path instead of the search paths.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Coach
	cfg.Coach.MaxHistoryLength = v.GetInt("coach.max_history_length")
	cfg.Coach.Temperature = v.GetFloat64("coach.temperature")
	cfg.Coach.TopP = v.GetFloat64("coach.top_p")
	cfg.Coach.MaxTokens = v.GetInt("coach.max_tokens")
	cfg.Coach.RequestTimeout = v.GetDuration("coach.request_timeout")

	// LLM providers
	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:         getStringFromMap(providerMap, "name"),
					Enabled:      getBoolFromMap(providerMap, "enabled"),
					Priority:     getIntFromMap(providerMap, "priority"),
					APIKey:       expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:      getStringFromMap(providerMap, "base_url"),
					Model:        getStringFromMap(providerMap, "model"),
					Timeout:      getStringFromMap(providerMap, "timeout"),
					InlineSystem: getBoolFromMap(providerMap, "inline_system"),
				})
			}
		}
	}

	// Storage
	cfg.Storage.Driver = v.GetString("storage.driver")
	cfg.Storage.Path = v.GetString("storage.path")

	// Auth
	cfg.Auth.DevMode = v.GetBool("auth.dev_mode")
	cfg.Auth.Required = v.GetBool("auth.required")
	cfg.Auth.Tokens = make(map[string]string)
	if tokensList, ok := v.Get("auth.tokens").([]interface{}); ok {
		for _, t := range tokensList {
			tokenMap, ok := t.(map[string]interface{})
			if !ok {
				continue
			}
			token := expandEnvVar(v, getStringFromMap(tokenMap, "token"))
			if token == "" {
				continue
			}
			cfg.Auth.Tokens[token] = getStringFromMap(tokenMap, "user_id")
		}
	}

	// CORS: env overrides arrive as a comma separated string
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	}

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("coach.max_history_length", 10)
	v.SetDefault("coach.temperature", 0.7)
	v.SetDefault("coach.top_p", 0.9)
	v.SetDefault("coach.max_tokens", 0)
	v.SetDefault("coach.request_timeout", "60s")

	v.SetDefault("storage.driver", StorageDriverSQLite)
	v.SetDefault("storage.path", "coach.db")

	v.SetDefault("auth.dev_mode", false)
	v.SetDefault("auth.required", true)

	v.SetDefault("rate_limit.per_min", 30)
}

func validate(cfg *Config) error {
	if cfg.Coach.MaxHistoryLength < 0 {
		return fmt.Errorf("coach.max_history_length must not be negative")
	}
	if cfg.Coach.RequestTimeout <= 0 {
		return fmt.Errorf("coach.request_timeout must be positive")
	}
	switch cfg.Storage.Driver {
	case StorageDriverSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	case StorageDriverNone:
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	return validateLLMConfig(&cfg.LLM)
}

// validateLLMConfig rejects malformed provider entries.
// An empty provider list is valid: the service then runs on the stub backend.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

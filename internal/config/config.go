// Package config handles loading and validating the puter-tts-api configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Provider  ProviderConfig  `mapstructure:"provider"`
	Synthesis SynthesisConfig `mapstructure:"synthesis"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds the HTTP and health server settings.
type ServerConfig struct {
	Port       int `mapstructure:"port"`
	HealthPort int `mapstructure:"health_port"`
}

// ProviderConfig selects and configures the synthesis backend.
type ProviderConfig struct {
	Backend string        `mapstructure:"backend"` // "puter" or "stub"
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SynthesisConfig holds the defaults applied to requests that omit
// voice, model, or format, plus the input length bound.
type SynthesisConfig struct {
	DefaultVoice  string `mapstructure:"default_voice"`
	DefaultModel  string `mapstructure:"default_model"`
	DefaultFormat string `mapstructure:"default_format"`
	MaxTextLength int    `mapstructure:"max_text_length"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./puter-tts.yaml, ./configs/puter-tts.yaml,
// /etc/puter-tts/puter-tts.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("provider.backend", "puter")
	v.SetDefault("provider.api_key", "${PUTER_API_KEY}")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.timeout", 30*time.Second)
	v.SetDefault("synthesis.default_voice", "Joanna")
	v.SetDefault("synthesis.default_model", "neural")
	v.SetDefault("synthesis.default_format", "mp3")
	v.SetDefault("synthesis.max_text_length", 3000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("puter-tts")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/puter-tts")
	}

	// Environment variables: PUTER_TTS_SERVER_PORT, PUTER_TTS_PROVIDER_BACKEND, etc.
	v.SetEnvPrefix("PUTER_TTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${PUTER_API_KEY}")
	cfg.Provider.APIKey = resolveEnvRef(cfg.Provider.APIKey)

	// A bare PORT env var overrides the configured listen port (platform
	// convention, e.g. Heroku/Render/Cloud Run).
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		if port, err := strconv.Atoi(portEnv); err == nil {
			cfg.Server.Port = port
		}
	}

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
// An unset reference resolves to empty, never to the literal placeholder.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

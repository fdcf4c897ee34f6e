package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration for the chat client
type Config struct {
	ServerURL       string `toml:"server_url" mapstructure:"server_url"`             // Backend base URL (e.g., "http://localhost:8000")
	ChatPath        string `toml:"chat_path" mapstructure:"chat_path"`               // Chat endpoint path
	HealthPath      string `toml:"health_path" mapstructure:"health_path"`           // Health endpoint path
	Language        string `toml:"language" mapstructure:"language"`                 // BCP 47 tag selecting the UI strings
	FallbackMessage string `toml:"fallback_message" mapstructure:"fallback_message"` // Overrides the localized apology text
	LoadingText     string `toml:"loading_text" mapstructure:"loading_text"`         // Overrides the localized loading text
	RequestTimeout  int    `toml:"request_timeout" mapstructure:"request_timeout"`   // Seconds (0 = wait indefinitely)
	LogFile         string `toml:"log_file" mapstructure:"log_file"`                 // Diagnostic log file (empty = stderr)
	LogLevel        string `toml:"log_level" mapstructure:"log_level"`               // debug, info, warn, error
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		ServerURL:       "http://localhost:8000",
		ChatPath:        "/api/chat",
		HealthPath:      "/health",
		Language:        "pt-BR",
		FallbackMessage: "",
		LoadingText:     "",
		RequestTimeout:  0,
		LogFile:         "",
		LogLevel:        "info",
	}
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	if config.LogFile != "" {
		logFile, err := expandEnvVar(config.LogFile)
		if err != nil {
			return nil, err
		}
		if logFile != "" {
			absPath, err := ResolvePath(logFile)
			if err != nil {
				return nil, fmt.Errorf("error resolving log file path '%s': %v", config.LogFile, err)
			}
			logFile = absPath
		}
		config.LogFile = logFile
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration can be used to reach the backend
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server URL is not configured. Set it in config file (server_url) or environment variable (CHATC_SERVER_URL)")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %v", c.ServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server URL %q: scheme must be http or https", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server URL %q: missing host", c.ServerURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative: %d", c.RequestTimeout)
	}
	return nil
}

// ChatURL returns the full URL of the chat endpoint
func (c *Config) ChatURL() string {
	return joinURL(c.ServerURL, c.ChatPath, "/api/chat")
}

// HealthURL returns the full URL of the health endpoint
func (c *Config) HealthURL() string {
	return joinURL(c.ServerURL, c.HealthPath, "/health")
}

// Timeout returns the request timeout (0 = none)
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// joinURL joins base and path with exactly one slash between them
func joinURL(base, path, defaultPath string) string {
	if path == "" {
		path = defaultPath
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	APIKey         string        `mapstructure:"REINFOLIB_API_KEY"`
	BaseURL        string        `mapstructure:"REINFOLIB_BASE_URL"`
	UserAgent      string        `mapstructure:"REINFOLIB_USER_AGENT"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ServerAddress  string        `mapstructure:"SERVER_ADDRESS"`
	DBSource       string        `mapstructure:"DB_SOURCE"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

// ErrMissingAPIKey is returned when no reinfolib subscription key is configured.
var ErrMissingAPIKey = errors.New("REINFOLIB_API_KEY environment variable is required")

// LoadConfig reads app.env from path, a .env file in the working directory and
// the process environment, in increasing order of precedence.
func LoadConfig(path string) (Config, error) {
	// .env is optional; values already set in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("REINFOLIB_API_KEY", "")
	v.SetDefault("REINFOLIB_BASE_URL", "https://www.reinfolib.mlit.go.jp/ex-api/external")
	v.SetDefault("REINFOLIB_USER_AGENT", "reinfolib-mcp-server/1.0.0")
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, nil
}

// Validate checks the settings every binary needs.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

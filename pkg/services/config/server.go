package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server holds the web entrypoint configuration. Values come from an
// optional config file with SALES_* environment overrides.
type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Currency        string        `mapstructure:"currency"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadServer reads the server config. An empty path uses defaults and
// environment variables only.
func LoadServer(path string) (*Server, error) {
	v := viper.New()
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8080")
	v.SetDefault("currency", "KSH")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:3000"
	defaultAPIPrefix      = "/api"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultConfigDir      = ".cobros"
	defaultRequestTimeout = 30
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	ServerAddress  string `mapstructure:"server_address"`
	APIPrefix      string `mapstructure:"api_prefix"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	TokenPath      string `mapstructure:"token_path"`
	RequestTimeout int    `mapstructure:"request_timeout_seconds"`
	EnableTLS      bool   `mapstructure:"enable_tls"`
}

// MustLoad loads the client configuration from .env, the environment and
// any config file already read by viper. It panics on invalid values.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("configuration error: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("API_PREFIX", defaultAPIPrefix)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	tokenPath := viper.GetString("TOKEN_PATH")
	if tokenPath == "" {
		tokenPath = filepath.Join(configDir, "token")
	}

	cfg := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		APIPrefix:      viper.GetString("API_PREFIX"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		TokenPath:      tokenPath,
		RequestTimeout: viper.GetInt("REQUEST_TIMEOUT_SECONDS"),
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", c.RequestTimeout)
	}
	return nil
}

// BaseURL is the API root every request path is appended to.
func (c *Config) BaseURL() string {
	addr := c.ServerAddress
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		scheme := "http://"
		if c.EnableTLS {
			scheme = "https://"
		}
		addr = scheme + addr
	}

	prefix := strings.TrimRight(c.APIPrefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return strings.TrimRight(addr, "/") + prefix
}

// IsProd reports whether this is the prod environment
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal reports whether this is the local environment
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}

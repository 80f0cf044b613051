package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSecret = "cobros-dev-secret"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Auth   Auth
}

type DB struct {
	Driver      string `env:"STORAGE_DRIVER"`
	DatabaseURI string `env:"DATABASE_URI"`
	SQLitePath  string `env:"SQLITE_PATH"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Auth protects the CRUD routes when PasswordHash is set.
type Auth struct {
	AdminUser    string        `env:"ADMIN_USER"`
	PasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	Secret       string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL_HOURS"`
}

func (a Auth) Enabled() bool {
	return a.PasswordHash != ""
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":3000")
	viper.SetDefault("storage_driver", DriverSQLite)
	viper.SetDefault("sqlite_path", "cobros.db")
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("admin_user", "admin")
	viper.SetDefault("token_ttl_hours", 24)
	viper.SetDefault("shutdown_timeout_seconds", 10)

	secret := viper.GetString("jwt_secret")
	if secret == "" {
		secret = defaultSecret
	}

	cfg := &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			Driver:      viper.GetString("storage_driver"),
			DatabaseURI: viper.GetString("database_uri"),
			SQLitePath:  viper.GetString("sqlite_path"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      viper.GetString("run_address"),
			ShutdownTimeout: time.Duration(viper.GetInt("shutdown_timeout_seconds")) * time.Second,
		},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
		Auth: Auth{
			AdminUser:    viper.GetString("admin_user"),
			PasswordHash: viper.GetString("admin_password_hash"),
			Secret:       secret,
			TokenTTL:     time.Duration(viper.GetInt("token_ttl_hours")) * time.Hour,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI is required for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if c.DB.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.DB.Driver)
	}

	if c.Auth.Enabled() && c.Env == EnvProd && c.Auth.Secret == defaultSecret {
		return fmt.Errorf("JWT_SECRET must be set in %s", EnvProd)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}

	return nil
}

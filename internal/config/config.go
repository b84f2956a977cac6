package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Database  DatabaseConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
	Seed      SeedConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the repository backend: postgres, sqlite or redis.
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SeedConfig struct {
	Enabled bool
}

type RateLimitConfig struct {
	CreateRPS   float64
	CreateBurst int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// A missing .env just means the environment is already set.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "promptuser")
	v.SetDefault("DB_PASSWORD", "promptpass")
	v.SetDefault("DB_NAME", "promptdb")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("SQLITE_PATH", "prompts.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SEED_ENABLED", true)
	v.SetDefault("RATE_LIMIT_CREATE_RPS", 1.0)
	v.SetDefault("RATE_LIMIT_CREATE_BURST", 5)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	driver := v.GetString("STORE_DRIVER")
	switch driver {
	case "postgres", "sqlite", "redis":
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (want postgres, sqlite or redis)", driver)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Store: StoreConfig{
			Driver: driver,
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("SEED_ENABLED"),
		},
		RateLimit: RateLimitConfig{
			CreateRPS:   v.GetFloat64("RATE_LIMIT_CREATE_RPS"),
			CreateBurst: v.GetInt("RATE_LIMIT_CREATE_BURST"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

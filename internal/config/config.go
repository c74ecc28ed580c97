package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvDevelopment = "development"

type App struct {
	Env         string
	Port        string
	BaseURL     string
	UploadDir   string
	UploadMaxMB int
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
	AutoMigrate        bool
}

type JWT struct {
	Secret       string
	ExpiresInSec int
}

type Log struct {
	Level string
	JSON  bool
	File  string
}

type RabbitMQ struct {
	URL string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

type Config struct {
	App      App
	DB       DB
	JWT      JWT
	Log      Log
	RabbitMQ RabbitMQ
	AuthRate RateLimit
}

// IsDevelopment reports whether raw error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, EnvDevelopment)
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds a Config from v after applying defaults and AutomaticEnv.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("BASE_URL", "")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_MB", 5)
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=storehub port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 30)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRES_IN", 86400)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AUTH_RATE_RPS", 5)
	v.SetDefault("AUTH_RATE_BURST", 10)
	v.AutomaticEnv()

	c := &Config{
		App: App{
			Env:         v.GetString("APP_ENV"),
			Port:        v.GetString("APP_PORT"),
			BaseURL:     strings.TrimRight(v.GetString("BASE_URL"), "/"),
			UploadDir:   v.GetString("UPLOAD_DIR"),
			UploadMaxMB: v.GetInt("UPLOAD_MAX_MB"),
		},
		DB: DB{
			Driver:             v.GetString("DB_DRIVER"),
			DSN:                v.GetString("DATABASE_DSN"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeMin: v.GetInt("DB_CONN_MAX_LIFETIME_MIN"),
			LogLevel:           v.GetString("DB_LOG_LEVEL"),
			AutoMigrate:        v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWT{
			Secret:       v.GetString("JWT_SECRET"),
			ExpiresInSec: v.GetInt("JWT_EXPIRES_IN"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
			JSON:  v.GetBool("LOG_JSON"),
			File:  v.GetString("LOG_FILE"),
		},
		RabbitMQ: RabbitMQ{URL: v.GetString("RABBITMQ_URL")},
		AuthRate: RateLimit{
			RPS:   v.GetFloat64("AUTH_RATE_RPS"),
			Burst: v.GetInt("AUTH_RATE_BURST"),
		},
	}

	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", c.App.Env)
		}
		c.JWT.Secret = "dev_jwt_secret"
	}
	if c.JWT.ExpiresInSec <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %d", c.JWT.ExpiresInSec)
	}
	return c, nil
}

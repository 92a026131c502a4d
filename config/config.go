package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	// EnvMemory runs without a database on the in-memory store.
	EnvMemory = "memory"

	defaultJWTSecret = "supersecret"
	defaultDBPass    = "password"
)

type Config struct {
	App struct {
		Env         string `envconfig:"APP_ENV" default:"development"`
		Port        string `envconfig:"PORT" default:"8088"`
		FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	}
	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     string `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:"password"`
		Name     string `envconfig:"DB_NAME" default:"scorebook"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
		TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	}
	JWT struct {
		AccessTokenSecret        string `envconfig:"JWT_ACCESS_TOKEN_SECRET" default:"supersecret"`
		AccessTokenExpiryMinutes int    `envconfig:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" default:"720"`
	}
	Operator struct {
		Username string `envconfig:"OPERATOR_USERNAME" default:"scorer"`
		// PasswordHash is a bcrypt hash; empty disables login.
		PasswordHash string `envconfig:"OPERATOR_PASSWORD_HASH"`
	}
	Scoring struct {
		TotalOvers          int  `envconfig:"SCORING_TOTAL_OVERS" default:"20"`
		ClearRevertsBatters bool `envconfig:"SCORING_CLEAR_REVERTS_BATTERS" default:"false"`
	}
	Milestones struct {
		RefreshInterval time.Duration `envconfig:"MILESTONE_REFRESH_INTERVAL" default:"10s"`
		DisplayDuration time.Duration `envconfig:"MILESTONE_DISPLAY_DURATION" default:"5s"`
	}
}

// Global DB instance, set by Initialize unless APP_ENV=memory.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on system environment variables")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.JWT.AccessTokenSecret == defaultJWTSecret {
		slog.Warn("Using default JWT secret. Set JWT_ACCESS_TOKEN_SECRET for production.")
	}
	if cfg.DB.Password == defaultDBPass && cfg.App.Env == EnvProduction {
		slog.Warn("Using default DB password in production. Set DB_PASSWORD.")
	}
	if cfg.Operator.PasswordHash == "" {
		slog.Warn("OPERATOR_PASSWORD_HASH is empty, operator login is disabled")
	}

	appConfig = cfg
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.App.Env {
	case EnvDevelopment, EnvProduction, EnvMemory:
	default:
		return fmt.Errorf("APP_ENV: expected development, production or memory, got %q", c.App.Env)
	}
	if c.Scoring.TotalOvers <= 0 {
		return fmt.Errorf("SCORING_TOTAL_OVERS: must be positive, got %d", c.Scoring.TotalOvers)
	}
	if c.Milestones.RefreshInterval <= 0 || c.Milestones.DisplayDuration <= 0 {
		return fmt.Errorf("milestone intervals must be positive")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode, c.DB.TimeZone,
	)
}

// ConnectDB opens the postgres connection and sets the global DB.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.App.Env == EnvDevelopment {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	slog.Info("Successfully connected to database", "host", cfg.DB.Host, "name", cfg.DB.Name)
	return gormDB, nil
}

// Initialize loads the configuration and, outside memory mode, connects to
// the database. Only the first call does any work.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if appConfig.App.Env == EnvMemory {
			return
		}
		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
		}
	})
	return loadErr
}

// GetConfig returns the loaded configuration. It panics before Initialize.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded; call config.Initialize() first")
	}
	return appConfig
}

// NewLogger returns the process logger: JSON in production, text otherwise.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.App.Env == EnvDevelopment {
		opts.Level = slog.LevelDebug
	}
	if cfg.App.Env == EnvProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

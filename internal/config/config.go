package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// BackendFile stores the user registry in a JSON file
	BackendFile = "file"
	// BackendPostgres stores the user registry in PostgreSQL
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken           string         `yaml:"bot_token" envconfig:"BOT_TOKEN"`
	BaseURL            string         `yaml:"base_url" envconfig:"BASE_URL"`
	AdminID            UserID         `yaml:"admin_id" envconfig:"ADMIN_ID"`
	SupportHandle      string         `yaml:"support_handle" envconfig:"SUPPORT_HANDLE"`
	PollTimeoutSeconds int            `yaml:"poll_timeout_seconds" envconfig:"POLL_TIMEOUT_SECONDS"`
	Storage            StorageConfig  `yaml:"storage" ignored:"true"`
	Database           DatabaseConfig `yaml:"database" ignored:"true"`
}

// UserID is a Telegram user id read from the environment. An empty value
// decodes to 0, meaning no user.
type UserID int64

// Decode implements envconfig.Decoder
func (u *UserID) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*u = 0
		return nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	*u = UserID(id)
	return nil
}

// StorageConfig selects where the user registry lives (STORAGE_* env)
type StorageConfig struct {
	Backend   string `yaml:"backend"`
	UsersFile string `yaml:"users_file" split_words:"true"`
}

// DatabaseConfig holds database connection settings (DB_* env)
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Load reads configuration from an optional YAML file named by CONFIG_FILE
// and then from environment variables, which take precedence
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Nested sections get explicit prefixes so DB_USER never falls back to USER
	for prefix, target := range map[string]interface{}{
		"":        &cfg,
		"STORAGE": &cfg.Storage,
		"DB":      &cfg.Database,
	} {
		if err := envconfig.Process(prefix, target); err != nil {
			return nil, fmt.Errorf("failed to process env: %w", err)
		}
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and fills in defaults
func Normalize(cfg *Config) error {
	if cfg.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if cfg.PollTimeoutSeconds < 0 {
		return fmt.Errorf("POLL_TIMEOUT_SECONDS must be >= 0")
	}
	if cfg.PollTimeoutSeconds == 0 {
		cfg.PollTimeoutSeconds = 10
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	cfg.Storage.UsersFile = defaultString(cfg.Storage.UsersFile, "users.json")

	cfg.Database.Host = defaultString(cfg.Database.Host, "localhost")
	cfg.Database.Port = defaultString(cfg.Database.Port, "5432")
	cfg.Database.Name = defaultString(cfg.Database.Name, "sessionbot")
	cfg.Database.User = defaultString(cfg.Database.User, "sessionbot")

	switch cfg.Storage.Backend {
	case BackendFile:
	case BackendPostgres:
		if cfg.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q; allowed: file, postgres", cfg.Storage.Backend)
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func defaultString(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

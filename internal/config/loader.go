package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from an optional YAML file and the environment.
// Priority: ENV > YAML > env-default tags. The YAML path comes from
// CONFIG_PATH; without it only the environment is read.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Database.MaxRetries < 1 {
		return fmt.Errorf("config: DB_MAX_RETRIES must be positive")
	}
	if c.Leave.EmployeeRole == "" || c.Leave.AdminRole == "" {
		return fmt.Errorf("config: leave role names must not be empty")
	}
	if c.Leave.OutboxBatchSize < 1 {
		return fmt.Errorf("config: LEAVE_OUTBOX_BATCH_SIZE must be positive")
	}
	return nil
}

// PostgresDSN builds the key/value DSN the gorm postgres driver expects.
func (d DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string        `yaml:"uri"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	RunMigrations  bool          `yaml:"run_migrations"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            getEnv("DATABASE_URL", "postgres://localhost:5432/luxerent?sslmode=disable"),
		MaxPoolSize:    getEnvAsInt("DATABASE_MAX_POOL_SIZE", 25),
		MinPoolSize:    getEnvAsInt("DATABASE_MIN_POOL_SIZE", 2),
		ConnectTimeout: getEnvAsDuration("DATABASE_CONNECT_TIMEOUT", 10*time.Second),
		RunMigrations:  getEnvAsBool("DATABASE_RUN_MIGRATIONS", true),
	}
}

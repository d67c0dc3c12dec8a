package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full server configuration, parsed from environment
// variables. Defaults suit local development against docker-compose.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	DB        DBConfig
	Quiz      QuizConfig
	Generator GeneratorConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"ocean_user"`
	Password string `env:"DB_PASSWORD" envDefault:"ocean_password"`
	Name     string `env:"DB_NAME" envDefault:"ocean_explorer"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type QuizConfig struct {
	QuestionTime time.Duration `env:"QUIZ_QUESTION_TIME" envDefault:"30s"`
}

type GeneratorConfig struct {
	Mock    bool   `env:"MOCK_GENERATOR" envDefault:"false"`
	CLIPath string `env:"CLAUDE_CLI_PATH"`
	APIKey  string `env:"ANTHROPIC_API_KEY"`
	Model   string `env:"ANTHROPIC_MODEL"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

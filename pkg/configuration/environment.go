package configuration

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/altora/backoffice/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

// Use returns the process-wide configuration, loading it on first call.
func Use() *Configuration {
	return singleton()
}

// LoadEnv loads the env files that exist, in order, without overriding
// variables already present in the environment.
func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}
	if len(existingFiles) == 0 {
		return 0, nil
	}
	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DatabaseOptions struct {
	Name     string `env:"DB_NAME" envDefault:"altora_backoffice"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type Configuration struct {
	Database DatabaseOptions
	Metrics  PrometheusOptions

	// TenantID scopes every request until multi-tenant routing lands.
	TenantID uuid.UUID `env:"TENANT_ID" envDefault:"00000000-0000-0000-0000-000000000001"`

	GoAppEnvironment   string   `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress      string   `env:"SOCKET_ADDRESS" envDefault:"localhost:3200"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile switches logging to JSON lines appended to the given file.
	LogFile            string   `env:"LOG_FILE"`
	SupportedLanguages []string `env:"SUPPORTED_LANGUAGES" envDefault:"en,zh" envSeparator:","`

	logger  *logrus.Logger
	logFile *os.File
}

func (c *Configuration) load(envFiles []string) error {
	if _, err := LoadEnv(envFiles); err != nil {
		return err
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		c.logFile = f
		c.logger = logging.FileLogger(level, f)
	} else {
		c.logger = logging.ConsoleLogger(level)
	}
	return nil
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

// Unload resets the configuration-owned resources. Called on fatal startup
// errors before the process exits.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
	c.logger = nil
}

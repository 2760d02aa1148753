package configuration

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

// LoadEnv loads the env files that exist on disk, in order. Missing files
// are skipped rather than treated as errors.
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
	Name     string `env:"DB_NAME" envDefault:"atelier_backoffice"`
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

type AuthOptions struct {
	// Secret verifies bearer tokens issued by the identity provider.
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	// StaticAdminToken, when set, is accepted as an admin credential.
	// Intended for local development only.
	StaticAdminToken string `env:"AUTH_STATIC_ADMIN_TOKEN"`
}

func (a *AuthOptions) Validate() error {
	if a.JWTSecret == "" && a.StaticAdminToken == "" {
		return fmt.Errorf("auth: either AUTH_JWT_SECRET or AUTH_STATIC_ADMIN_TOKEN must be set")
	}
	return nil
}

type RetryOptions struct {
	// MaxAttempts bounds how many times a single persistence statement is
	// executed, counting the first attempt.
	MaxAttempts   int           `env:"DB_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	InitialDelay  time.Duration `env:"DB_RETRY_INITIAL_DELAY" envDefault:"50ms"`
	MaxTotalDelay time.Duration `env:"DB_RETRY_MAX_TOTAL_DELAY" envDefault:"2s"`
}

func (r *RetryOptions) Validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("retry: MaxAttempts must be at least 1, got %d", r.MaxAttempts)
	}
	if r.InitialDelay <= 0 {
		return fmt.Errorf("retry: InitialDelay must be positive, got %s", r.InitialDelay)
	}
	return nil
}

type CatalogOptions struct {
	// FeaturedLimit caps how many portfolio items may be featured at once.
	FeaturedLimit int `env:"FEATURED_LIMIT" envDefault:"3"`
}

func (c *CatalogOptions) Validate() error {
	if c.FeaturedLimit < 1 {
		return fmt.Errorf("catalog: FEATURED_LIMIT must be at least 1, got %d", c.FeaturedLimit)
	}
	return nil
}

type Configuration struct {
	Database DatabaseOptions
	Auth     AuthOptions
	Retry    RetryOptions
	Catalog  CatalogOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"SOCKET_ADDRESS" envDefault:":8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	// DebugResponses attaches the per-request diagnostic trace to error
	// bodies. Must stay off in production; traces are always in the logs.
	DebugResponses  bool   `env:"DEBUG_RESPONSES" envDefault:"false"`
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-Id"`
	AllowedOrigins  string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	logger *logrus.Logger
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	if _, err := LoadEnv(envFiles); err != nil {
		return err
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if c.IsProduction() && c.DebugResponses {
		return fmt.Errorf("DEBUG_RESPONSES must not be enabled in production")
	}
	if err := c.Retry.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	c.logger = newLogger(c.LogLevel)
	return nil
}

func (c *Configuration) IsProduction() bool {
	return c.GoAppEnvironment == Production
}

func (c *Configuration) Logger() *logrus.Logger {
	if c.logger == nil {
		c.logger = newLogger(c.LogLevel)
	}
	return c.logger
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

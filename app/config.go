package app

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/core/server"
	"github.com/dmitrymomot/greeter/pkg/jwt"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the application configuration, read from the environment.
type Config struct {
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"greeter"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Greeting          string `env:"GREETING" envDefault:"Hello world"`
	DefaultLocale     string `env:"DEFAULT_LOCALE" envDefault:"en"`
	LocaleFromRequest bool   `env:"LOCALE_FROM_REQUEST" envDefault:"false"`

	JWTSigningKey string `env:"JWT_SIGNING_KEY,required"`
	AuthRequired  bool   `env:"AUTH_REQUIRED" envDefault:"true"`

	CookieSecrets []string `env:"COOKIE_SECRETS" envSeparator:","`
	BodyLimit     int64    `env:"BODY_LIMIT" envDefault:"102400"`
	MetricsPath   string   `env:"METRICS_PATH"`
	HealthRoutes  bool     `env:"HEALTH_ROUTES" envDefault:"false"`
}

// Production reports whether APP_ENV is "production".
func (c Config) Production() bool {
	return c.Env == "production"
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	if _, err := locale.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("%w: DEFAULT_LOCALE %q: %w", ErrInvalidConfig, c.DefaultLocale, err)
	}
	if len(c.JWTSigningKey) < jwt.MinKeyLength {
		return fmt.Errorf("%w: JWT_SIGNING_KEY must be at least %d bytes", ErrInvalidConfig, jwt.MinKeyLength)
	}
	if c.BodyLimit <= 0 {
		return fmt.Errorf("%w: BODY_LIMIT must be positive", ErrInvalidConfig)
	}
	if c.MetricsPath != "" {
		if c.MetricsPath[0] != '/' || c.MetricsPath == "/" {
			return fmt.Errorf("%w: METRICS_PATH must start with / and differ from the root route", ErrInvalidConfig)
		}
		if c.HealthRoutes && (c.MetricsPath == "/live" || c.MetricsPath == "/ready") {
			return fmt.Errorf("%w: METRICS_PATH %s collides with a health route", ErrInvalidConfig, c.MetricsPath)
		}
	}
	return nil
}

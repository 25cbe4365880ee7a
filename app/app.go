package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/greeter/core/config"
	"github.com/dmitrymomot/greeter/core/router"
	"github.com/dmitrymomot/greeter/core/server"
	"github.com/dmitrymomot/greeter/pkg/jwt"
)

// App wires the router, the middleware chain and the HTTP server.
type App struct {
	config   Config
	router   router.Router[*Context]
	server   *server.Server
	jwt      *jwt.Service
	registry *prometheus.Registry
	logger   *slog.Logger
}

type Option func(*App) error

// New builds an App from cfg. It fails on invalid configuration, so a
// misconfigured process never binds its port.
func New(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.jwt == nil {
		svc, err := jwt.NewFromString(cfg.JWTSigningKey)
		if err != nil {
			return nil, err
		}
		a.jwt = svc
	}

	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if a.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(a.logger))
		if err != nil {
			return nil, err
		}
		a.server = s
	}

	a.router = router.New(
		router.WithContextFactory(newContext),
		router.WithLogger[*Context](a.logger),
	)
	a.routes()

	return a, nil
}

// NewFromEnv loads Config from the environment and calls New.
func NewFromEnv(opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Handler returns the HTTP handler serving every route.
func (a *App) Handler() http.Handler {
	return a.router
}

// Routes lists the registered routes.
func (a *App) Routes() []router.Route {
	return a.router.Routes()
}

// Server returns the underlying HTTP server.
func (a *App) Server() *server.Server {
	return a.server
}

// Run binds the listener and serves until ctx is canceled. A bind failure
// is returned immediately.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx, a.router)()
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = logger
		return nil
	}
}

func WithServer(server *server.Server) Option {
	return func(a *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		a.server = server
		return nil
	}
}

func WithJWTService(svc *jwt.Service) Option {
	return func(a *App) error {
		if svc == nil {
			return errors.New("jwt service cannot be nil")
		}
		a.jwt = svc
		return nil
	}
}

func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *App) error {
		if reg == nil {
			return errors.New("registry cannot be nil")
		}
		a.registry = reg
		return nil
	}
}

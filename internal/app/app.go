package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"storectl/internal/client"
	"storectl/internal/config"
	"storectl/internal/core"
	"storectl/internal/faults"
	"storectl/internal/modules/products"
)

// App агрегирует зависимости одного запуска.
type App struct {
	Registry *core.Registry
	Config   config.Config
	Logger   *slog.Logger
}

// Options переопределяют части приложения; в тестах подставляется HTTP-клиент.
type Options struct {
	HTTPClient *http.Client
}

// NewApp строит реестр модулей поверх клиента API.
func NewApp(ctx context.Context, cfg config.Config, lg *slog.Logger, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, faults.New(faults.UsageError, "invalid config", err)
	}
	if lg == nil {
		lg = slog.Default()
	}
	lg = lg.With("invocation_id", uuid.NewString())

	api, err := client.New(cfg.API.BaseURL, opts.HTTPClient, lg)
	if err != nil {
		return nil, err
	}

	r := core.NewRegistry()
	if err := r.Register(ctx, products.New(api)); err != nil {
		return nil, fmt.Errorf("register products module: %w", err)
	}

	return &App{Registry: r, Config: cfg, Logger: lg}, nil
}

// Run разбирает аргументы и выполняет одну операцию.
func (a *App) Run(ctx context.Context, args []string) (core.Response, error) {
	cmd, err := core.ParseCommand(args)
	if err != nil {
		a.Logger.Debug("parse failed", "err", err)
		return core.Response{}, err
	}
	a.Logger.Debug("dispatch", "verb", cmd.Verb(), "resource", cmd.Resource())
	return a.Registry.Execute(ctx, cmd)
}

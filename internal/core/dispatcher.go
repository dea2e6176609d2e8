package core

import (
	"context"
	"errors"
	"fmt"

	"storectl/internal/faults"
)

var (
	errProviderExists   = errors.New("provider already registered")
	errUnknownProvider  = errors.New("unknown provider")
	errInvalidArguments = errors.New("invalid arguments")
)

// Registry хранит модули ресурсов и передает им команды.
type Registry struct {
	providers map[string]CommandProvider
}

// NewRegistry создает пустой реестр модулей.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]CommandProvider)}
}

// Register добавляет модуль; имя должно быть уникальным.
func (r *Registry) Register(ctx context.Context, provider CommandProvider) error {
	if provider == nil {
		return fmt.Errorf("provider is nil: %w", errInvalidArguments)
	}
	name := provider.Name()
	if name == "" {
		return fmt.Errorf("provider name is empty: %w", errInvalidArguments)
	}
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("%s: %w", name, errProviderExists)
	}
	if err := provider.Init(ctx); err != nil {
		return fmt.Errorf("init %s: %w", name, err)
	}
	r.providers[name] = provider
	return nil
}

// Execute передает команду модулю ее ресурса.
func (r *Registry) Execute(ctx context.Context, cmd Command) (Response, error) {
	if cmd == nil {
		return Response{}, faults.New(faults.UsageError, "empty command", errInvalidArguments)
	}
	prov, ok := r.providers[cmd.Resource()]
	if !ok {
		return Response{}, faults.New(faults.UsageError, "unsupported resource "+cmd.Resource(), errUnknownProvider)
	}
	return prov.Execute(ctx, cmd)
}

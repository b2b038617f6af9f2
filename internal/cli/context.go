package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/dublaj/internal/app"
	"github.com/thenoetrevino/dublaj/internal/config"
)

type configKey struct{}

// WithConfig stores the loaded configuration on ctx
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the configuration stored by WithConfig, or defaults
func ConfigFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// NewCLI initializes the application container for a command
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, ConfigFrom(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

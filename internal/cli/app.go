// Package cli wires the scroll lock for command line use.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/scrollguard/internal/application/usecase"
	"github.com/bnema/scrollguard/internal/cli/styles"
	"github.com/bnema/scrollguard/internal/config"
	"github.com/bnema/scrollguard/internal/domain/build"
	"github.com/bnema/scrollguard/internal/infrastructure/headless"
	"github.com/bnema/scrollguard/internal/infrastructure/webkit"
	"github.com/bnema/scrollguard/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the CLI logger.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	return &App{
		Config: cfg,
		Theme:  styles.NewTheme(),
		ctx:    ctx,
	}, nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Page is a headless page driven by a scroll lock.
type Page struct {
	Runtime  *headless.Runtime
	Document *webkit.ScrollDocument
	Lock     *usecase.ScrollLockUseCase
}

// NewPage creates a headless page scrolled to scrollY with a scroll lock
// configured from a.Config.
func (a *App) NewPage(ctx context.Context, scrollY int) (*Page, error) {
	rt, err := headless.New()
	if err != nil {
		return nil, err
	}

	selector := a.Config.ScrollLock.ContainerSelector
	if len(selector) > 1 && selector[0] == '#' {
		if err := rt.AddContainer(ctx, selector[1:]); err != nil {
			return nil, fmt.Errorf("create container %s: %w", selector, err)
		}
	}

	doc := webkit.NewScrollDocument(rt, selector)
	if err := doc.SetScrollY(ctx, scrollY); err != nil {
		return nil, err
	}

	return &Page{
		Runtime:  rt,
		Document: doc,
		Lock:     usecase.NewScrollLockUseCase(doc, a.Config.ScrollLock.MarkerAttribute),
	}, nil
}

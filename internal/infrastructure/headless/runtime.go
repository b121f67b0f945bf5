// Package headless evaluates page scripts in an embedded JavaScript VM,
// standing in for a WebView when no browser is available.
package headless

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/scrollguard/internal/application/port"
	"github.com/bnema/scrollguard/internal/logging"
)

//go:embed page_shim.js
var pageShim string

// Runtime is a single headless page. Scripts run one at a time.
type Runtime struct {
	mu sync.Mutex
	vm *sobek.Runtime
}

// Compile-time interface check.
var _ port.ScriptEvaluator = (*Runtime)(nil)

// New creates a page with an html root and a body, scrolled to the top.
func New() (*Runtime, error) {
	vm := sobek.New()
	if _, err := vm.RunScript("page_shim.js", pageShim); err != nil {
		return nil, fmt.Errorf("failed to load page shim: %w", err)
	}
	return &Runtime{vm: vm}, nil
}

// Evaluate runs script and exports its completion value.
// undefined and null are returned as nil.
func (r *Runtime) Evaluate(ctx context.Context, script string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	value, err := r.vm.RunString(script)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("headless script failed")
		return nil, fmt.Errorf("failed to evaluate script: %w", err)
	}
	if value == nil || sobek.IsUndefined(value) || sobek.IsNull(value) {
		return nil, nil
	}
	return value.Export(), nil
}

// AddContainer creates an element reachable through the "#id" selector.
func (r *Runtime) AddContainer(ctx context.Context, id string) error {
	literal, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode container id: %w", err)
	}
	_, err = r.Evaluate(ctx, fmt.Sprintf("document.createContainer(%s); undefined", literal))
	return err
}

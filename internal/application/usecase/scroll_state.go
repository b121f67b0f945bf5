package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/scrollguard/internal/domain/entity"
)

// ScrollLockSnapshot describes the coordinator and DOM state at one instant.
type ScrollLockSnapshot struct {
	Prohibitions []entity.ProhibitionID
	DOMLocked    bool
	ScrollY      int
	// FrozenTop is the container's inline top value, empty when unset.
	FrozenTop string
}

// IsScrollDisabled reports whether the lock marker is present on the
// document root.
func (uc *ScrollLockUseCase) IsScrollDisabled(ctx context.Context) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.isDOMScrollDisabled(ctx)
}

// AnyProhibitionAdded reports whether any prohibition is active.
func (uc *ScrollLockUseCase) AnyProhibitionAdded() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.anyProhibitionAdded()
}

// IsProhibitionActive reports whether id is active.
func (uc *ScrollLockUseCase) IsProhibitionActive(id entity.ProhibitionID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.prohibitions.Has(id)
}

// Prohibitions returns the active prohibitions in sorted order.
func (uc *ScrollLockUseCase) Prohibitions() []entity.ProhibitionID {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.prohibitions.IDs()
}

// Snapshot reads the prohibition set together with the DOM lock record.
func (uc *ScrollLockUseCase) Snapshot(ctx context.Context) (ScrollLockSnapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snap := ScrollLockSnapshot{Prohibitions: uc.prohibitions.IDs()}

	locked, err := uc.isDOMScrollDisabled(ctx)
	if err != nil {
		return snap, err
	}
	snap.DOMLocked = locked

	if snap.ScrollY, err = uc.doc.ScrollY(ctx); err != nil {
		return snap, fmt.Errorf("failed to read scroll offset: %w", err)
	}

	container, err := uc.doc.ScrollContainer(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to resolve scroll container: %w", err)
	}
	if snap.FrozenTop, _, err = uc.doc.InlineStyleValue(ctx, container, entity.StyleTop); err != nil {
		return snap, fmt.Errorf("failed to read container top: %w", err)
	}
	return snap, nil
}

// isDOMScrollDisabled requires uc.mu.
func (uc *ScrollLockUseCase) isDOMScrollDisabled(ctx context.Context) (bool, error) {
	root, err := uc.doc.Root(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to resolve document root: %w", err)
	}
	_, present, err := uc.doc.Attribute(ctx, root, uc.marker)
	if err != nil {
		return false, fmt.Errorf("failed to read lock marker: %w", err)
	}
	return present, nil
}

// anyProhibitionAdded requires uc.mu.
func (uc *ScrollLockUseCase) anyProhibitionAdded() bool {
	return !uc.prohibitions.Empty()
}

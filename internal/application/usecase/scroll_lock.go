// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/scrollguard/internal/application/port"
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/bnema/scrollguard/internal/logging"
)

// ScrollLockUseCase coordinates page scroll locking between independent
// callers. Scrolling stays disabled while at least one prohibition is active;
// the DOM is only touched when the prohibition set turns empty or non-empty.
//
// Whether the lock is applied is read from the marker attribute on the
// document root, not mirrored in memory. Nothing else may write the managed
// inline styles or the marker while the use case is in use.
type ScrollLockUseCase struct {
	mu           sync.Mutex
	doc          port.Document
	prohibitions entity.ProhibitionSet
	marker       string
}

// NewScrollLockUseCase creates a coordinator driving doc.
// marker is the boolean attribute set on the document root while locked;
// empty selects entity.DefaultLockMarkerAttribute.
func NewScrollLockUseCase(doc port.Document, marker string) *ScrollLockUseCase {
	if marker == "" {
		marker = entity.DefaultLockMarkerAttribute
	}
	return &ScrollLockUseCase{
		doc:          doc,
		prohibitions: entity.NewProhibitionSet(),
		marker:       marker,
	}
}

// EnableScroll releases every prohibition at once and unlocks the DOM if it
// is locked.
func (uc *ScrollLockUseCase) EnableScroll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logging.FromContext(ctx)
	log.Debug().Int("released", uc.prohibitions.Len()).Msg("enabling scroll")

	uc.prohibitions.Clear()
	if err := uc.removeDOMLock(ctx); err != nil {
		return fmt.Errorf("failed to enable scroll: %w", err)
	}
	return nil
}

// DisableScroll adds the anonymous prohibition. It is a no-op while any
// prohibition, named or anonymous, is already active.
func (uc *ScrollLockUseCase) DisableScroll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.anyProhibitionAdded() {
		return nil
	}

	uc.prohibitions.Add(entity.AnonymousProhibition)
	if err := uc.applyDOMLock(ctx); err != nil {
		return fmt.Errorf("failed to disable scroll: %w", err)
	}
	return nil
}

// AddProhibition registers id. The DOM is locked only when id is the first
// active prohibition.
func (uc *ScrollLockUseCase) AddProhibition(ctx context.Context, id entity.ProhibitionID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logging.FromContext(ctx)
	wasEmpty := !uc.anyProhibitionAdded()
	uc.prohibitions.Add(id)

	log.Debug().
		Str("prohibition", string(id)).
		Int("active", uc.prohibitions.Len()).
		Msg("prohibition added")

	if !wasEmpty {
		return nil
	}
	if err := uc.applyDOMLock(ctx); err != nil {
		return fmt.Errorf("failed to add prohibition %q: %w", id, err)
	}
	return nil
}

// RemoveProhibition releases id. Unknown ids are ignored. The DOM is unlocked
// only once no other prohibition remains.
func (uc *ScrollLockUseCase) RemoveProhibition(ctx context.Context, id entity.ProhibitionID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.prohibitions.Remove(id) {
		return nil
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("prohibition", string(id)).
		Int("active", uc.prohibitions.Len()).
		Msg("prohibition removed")

	if uc.anyProhibitionAdded() {
		return nil
	}
	if err := uc.removeDOMLock(ctx); err != nil {
		return fmt.Errorf("failed to remove prohibition %q: %w", id, err)
	}
	return nil
}

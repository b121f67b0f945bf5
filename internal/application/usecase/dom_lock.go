package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/scrollguard/internal/application/port"
	"github.com/bnema/scrollguard/internal/domain/cssunit"
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/bnema/scrollguard/internal/logging"
)

// applyDOMLock pins the scroll container at the current offset and stops the
// root from scrolling. Requires uc.mu.
func (uc *ScrollLockUseCase) applyDOMLock(ctx context.Context) error {
	log := logging.FromContext(ctx)

	y, err := uc.doc.ScrollY(ctx)
	if err != nil {
		return fmt.Errorf("failed to read scroll offset: %w", err)
	}
	root, container, err := uc.elements(ctx)
	if err != nil {
		return err
	}

	top := cssunit.Px(-y)
	if err := uc.doc.MergeInlineStyle(ctx, container, map[string]string{
		entity.StylePosition: entity.PositionFixed,
		entity.StyleWidth:    entity.WidthFull,
		entity.StyleTop:      top,
	}); err != nil {
		return fmt.Errorf("failed to pin scroll container: %w", err)
	}
	if err := uc.doc.MergeInlineStyle(ctx, root, map[string]string{
		entity.StyleOverflowY: entity.OverflowHidden,
	}); err != nil {
		return fmt.Errorf("failed to hide root overflow: %w", err)
	}
	if err := uc.doc.MergeAttributes(ctx, root, map[string]string{
		uc.marker: entity.LockMarkerValue,
	}); err != nil {
		return fmt.Errorf("failed to set lock marker: %w", err)
	}

	log.Debug().Int("scroll_y", y).Str("top", top).Msg("dom scroll locked")
	return nil
}

// removeDOMLock undoes applyDOMLock and restores the frozen offset.
// It must do nothing when the marker is absent: the offset is recovered from
// the container's inline top, which reads as 0 once unlocked and would snap
// the page to the top. Requires uc.mu.
//
// Only top is read back. Inline position, width and overflow-y values that
// predate the lock are not restored.
func (uc *ScrollLockUseCase) removeDOMLock(ctx context.Context) error {
	log := logging.FromContext(ctx)

	locked, err := uc.isDOMScrollDisabled(ctx)
	if err != nil {
		return err
	}
	if !locked {
		log.Debug().Msg("dom scroll not locked, skipping unlock")
		return nil
	}

	root, container, err := uc.elements(ctx)
	if err != nil {
		return err
	}

	top, _, err := uc.doc.InlineStyleValue(ctx, container, entity.StyleTop)
	if err != nil {
		return fmt.Errorf("failed to read container top: %w", err)
	}
	y := -cssunit.ParsePx(top)

	// overflow-y is removed rather than set to a scrollable value: some mobile
	// browsers fail to report the scroll offset of drag libraries otherwise.
	if err := uc.doc.RemoveInlineStyleProperty(ctx, root, entity.StyleOverflowY); err != nil {
		return fmt.Errorf("failed to remove root overflow: %w", err)
	}
	for _, prop := range []string{entity.StylePosition, entity.StyleWidth, entity.StyleTop} {
		if err := uc.doc.RemoveInlineStyleProperty(ctx, container, prop); err != nil {
			return fmt.Errorf("failed to remove container %s: %w", prop, err)
		}
	}
	if err := uc.doc.SetScrollY(ctx, y); err != nil {
		return fmt.Errorf("failed to restore scroll offset: %w", err)
	}
	if err := uc.doc.RemoveAttribute(ctx, root, uc.marker); err != nil {
		return fmt.Errorf("failed to remove lock marker: %w", err)
	}

	log.Debug().Int("scroll_y", y).Msg("dom scroll unlocked")
	return nil
}

func (uc *ScrollLockUseCase) elements(ctx context.Context) (root, container port.ElementHandle, err error) {
	if root, err = uc.doc.Root(ctx); err != nil {
		return "", "", fmt.Errorf("failed to resolve document root: %w", err)
	}
	if container, err = uc.doc.ScrollContainer(ctx); err != nil {
		return "", "", fmt.Errorf("failed to resolve scroll container: %w", err)
	}
	return root, container, nil
}

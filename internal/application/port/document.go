// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, headless JS, memory).
package port

import (
	"context"
	"errors"
)

// ErrElementNotFound is returned when an element handle does not resolve to
// an element in the page.
var ErrElementNotFound = errors.New("element not found")

// ElementHandle identifies an element of the page. Implementations resolve it
// as a CSS selector.
type ElementHandle string

// RootElement is the handle of the document root element.
const RootElement ElementHandle = ":root"

// Document is the DOM capability the scroll lock drives. Implementations
// only perform the primitive reads and writes; sequencing lives in the use case.
type Document interface {
	// ScrollY returns the current vertical scroll offset in pixels.
	ScrollY(ctx context.Context) (int, error)
	// SetScrollY scrolls the page to the given vertical offset.
	SetScrollY(ctx context.Context, y int) error

	// Root returns the document root element.
	Root(ctx context.Context) (ElementHandle, error)
	// ScrollContainer returns the element pinned in place while locked.
	ScrollContainer(ctx context.Context) (ElementHandle, error)

	// MergeInlineStyle sets the listed inline properties, preserving others.
	MergeInlineStyle(ctx context.Context, el ElementHandle, props map[string]string) error
	// RemoveInlineStyleProperty removes the property entirely instead of blanking it.
	RemoveInlineStyleProperty(ctx context.Context, el ElementHandle, prop string) error
	// InlineStyleValue returns the inline value of prop and whether it is set.
	InlineStyleValue(ctx context.Context, el ElementHandle, prop string) (string, bool, error)

	// MergeAttributes sets the listed attributes, preserving others.
	MergeAttributes(ctx context.Context, el ElementHandle, attrs map[string]string) error
	// RemoveAttribute removes the attribute if present.
	RemoveAttribute(ctx context.Context, el ElementHandle, name string) error
	// Attribute returns the attribute value and whether it is present.
	Attribute(ctx context.Context, el ElementHandle, name string) (string, bool, error)
}

// ScriptEvaluator runs JavaScript in a page's main world and returns the
// exported completion value (nil for undefined/null).
type ScriptEvaluator interface {
	Evaluate(ctx context.Context, script string) (any, error)
}

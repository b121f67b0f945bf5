// Package webkit adapts WebView page scripting to application ports.
package webkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/bnema/scrollguard/internal/application/port"
	"github.com/bnema/scrollguard/internal/domain/entity"
)

// elementScript resolves an element by selector and runs body against it as el.
// It evaluates to null when the selector matches nothing.
const elementScript = `(function() {
  var el = document.querySelector(%s);
  if (!el) return null;
  %s
})()`

const (
	scrollYScript    = `Math.round(window.scrollY || window.pageYOffset || 0)`
	setScrollYScript = `window.scrollTo(0, %d)`

	mergeStyleBody = `var props = %s;
  for (var k in props) { el.style.setProperty(k, props[k]); }
  return true;`
	removeStyleBody = `el.style.removeProperty(%s);
  return true;`
	styleValueBody = `return {value: el.style.getPropertyValue(%s)};`

	mergeAttrsBody = `var attrs = %s;
  for (var k in attrs) { el.setAttribute(k, attrs[k]); }
  return true;`
	removeAttrBody = `el.removeAttribute(%s);
  return true;`
	attrValueBody = `return {value: el.getAttribute(%s)};`
)

// ScrollDocument drives a page through JavaScript evaluation. The evaluator
// is a WebView main world or the headless runtime.
type ScrollDocument struct {
	eval      port.ScriptEvaluator
	container port.ElementHandle
}

// Compile-time interface check.
var _ port.Document = (*ScrollDocument)(nil)

// NewScrollDocument creates a document whose scroll container is matched by
// containerSelector (entity.DefaultScrollContainerSelector when empty).
func NewScrollDocument(eval port.ScriptEvaluator, containerSelector string) *ScrollDocument {
	if containerSelector == "" {
		containerSelector = entity.DefaultScrollContainerSelector
	}
	return &ScrollDocument{
		eval:      eval,
		container: port.ElementHandle(containerSelector),
	}
}

func (d *ScrollDocument) ScrollY(ctx context.Context) (int, error) {
	v, err := d.eval.Evaluate(ctx, scrollYScript)
	if err != nil {
		return 0, fmt.Errorf("failed to read scrollY: %w", err)
	}
	y, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("unexpected scrollY result %v: %w", v, err)
	}
	return y, nil
}

func (d *ScrollDocument) SetScrollY(ctx context.Context, y int) error {
	if _, err := d.eval.Evaluate(ctx, fmt.Sprintf(setScrollYScript, y)); err != nil {
		return fmt.Errorf("failed to scroll to %d: %w", y, err)
	}
	return nil
}

func (d *ScrollDocument) Root(_ context.Context) (port.ElementHandle, error) {
	return port.RootElement, nil
}

func (d *ScrollDocument) ScrollContainer(_ context.Context) (port.ElementHandle, error) {
	return d.container, nil
}

func (d *ScrollDocument) MergeInlineStyle(ctx context.Context, el port.ElementHandle, props map[string]string) error {
	return d.mutate(ctx, el, mergeStyleBody, props)
}

func (d *ScrollDocument) RemoveInlineStyleProperty(ctx context.Context, el port.ElementHandle, prop string) error {
	return d.mutate(ctx, el, removeStyleBody, prop)
}

func (d *ScrollDocument) InlineStyleValue(ctx context.Context, el port.ElementHandle, prop string) (string, bool, error) {
	v, ok, err := d.read(ctx, el, styleValueBody, prop)
	if err != nil {
		return "", false, err
	}
	// getPropertyValue reports unset properties as "".
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (d *ScrollDocument) MergeAttributes(ctx context.Context, el port.ElementHandle, attrs map[string]string) error {
	return d.mutate(ctx, el, mergeAttrsBody, attrs)
}

func (d *ScrollDocument) RemoveAttribute(ctx context.Context, el port.ElementHandle, name string) error {
	return d.mutate(ctx, el, removeAttrBody, name)
}

func (d *ScrollDocument) Attribute(ctx context.Context, el port.ElementHandle, name string) (string, bool, error) {
	return d.read(ctx, el, attrValueBody, name)
}

func (d *ScrollDocument) mutate(ctx context.Context, el port.ElementHandle, body string, arg any) error {
	v, err := d.run(ctx, el, body, arg)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: %s", port.ErrElementNotFound, el)
	}
	return nil
}

// read evaluates a body returning {value: ...}. A null value means absent.
func (d *ScrollDocument) read(ctx context.Context, el port.ElementHandle, body string, arg any) (string, bool, error) {
	v, err := d.run(ctx, el, body, arg)
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, fmt.Errorf("%w: %s", port.ErrElementNotFound, el)
	}

	result, err := cast.ToStringMapE(v)
	if err != nil {
		return "", false, fmt.Errorf("unexpected script result %v: %w", v, err)
	}
	raw, ok := result["value"]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false, fmt.Errorf("unexpected value %v: %w", raw, err)
	}
	return s, true, nil
}

func (d *ScrollDocument) run(ctx context.Context, el port.ElementHandle, body string, arg any) (any, error) {
	selector, err := jsLiteral(string(el))
	if err != nil {
		return nil, err
	}
	argLiteral, err := jsLiteral(arg)
	if err != nil {
		return nil, err
	}

	script := fmt.Sprintf(elementScript, selector, fmt.Sprintf(body, argLiteral))
	v, err := d.eval.Evaluate(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate script on %s: %w", el, err)
	}
	return v, nil
}

// jsLiteral encodes v as a JavaScript literal. JSON is a subset of JS.
func jsLiteral(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode script argument: %w", err)
	}
	return string(data), nil
}

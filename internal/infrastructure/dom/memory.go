// Package dom provides an in-memory page implementing port.Document.
package dom

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/scrollguard/internal/application/port"
	"github.com/bnema/scrollguard/internal/domain/entity"
)

type element struct {
	style map[string]string
	attrs map[string]string
}

func newElement() *element {
	return &element{
		style: make(map[string]string),
		attrs: make(map[string]string),
	}
}

// MemoryDocument is a page held in memory with a document root and one scroll
// container. Like a browser, it reports a scroll offset of 0 while the
// container is fixed-positioned. Every call is recorded by method name.
type MemoryDocument struct {
	mu        sync.Mutex
	container port.ElementHandle
	elements  map[port.ElementHandle]*element
	scrollY   int
	calls     []string
}

// Compile-time interface check.
var _ port.Document = (*MemoryDocument)(nil)

// NewMemoryDocument creates a page scrolled to scrollY. An empty container
// selects entity.DefaultScrollContainerSelector.
func NewMemoryDocument(container port.ElementHandle, scrollY int) *MemoryDocument {
	if container == "" {
		container = entity.DefaultScrollContainerSelector
	}
	return &MemoryDocument{
		container: container,
		elements: map[port.ElementHandle]*element{
			port.RootElement: newElement(),
			container:        newElement(),
		},
		scrollY: max(scrollY, 0),
	}
}

// Calls returns the recorded method names in call order.
func (d *MemoryDocument) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// CallCount returns how many times method was called.
func (d *MemoryDocument) CallCount(method string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.calls {
		if c == method {
			n++
		}
	}
	return n
}

// ResetCalls clears the call log.
func (d *MemoryDocument) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

// InlineStyle returns a copy of the element's inline style.
func (d *MemoryDocument) InlineStyle(el port.ElementHandle) map[string]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.elements[el]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(e.style))
	for k, v := range e.style {
		out[k] = v
	}
	return out
}

func (d *MemoryDocument) ScrollY(_ context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "ScrollY")
	if d.elements[d.container].style[entity.StylePosition] == entity.PositionFixed {
		return 0, nil
	}
	return d.scrollY, nil
}

func (d *MemoryDocument) SetScrollY(_ context.Context, y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "SetScrollY")
	d.scrollY = max(y, 0)
	return nil
}

func (d *MemoryDocument) Root(_ context.Context) (port.ElementHandle, error) {
	return port.RootElement, nil
}

func (d *MemoryDocument) ScrollContainer(_ context.Context) (port.ElementHandle, error) {
	return d.container, nil
}

func (d *MemoryDocument) MergeInlineStyle(_ context.Context, el port.ElementHandle, props map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "MergeInlineStyle")
	e, err := d.lookup(el)
	if err != nil {
		return err
	}
	for k, v := range props {
		e.style[k] = v
	}
	return nil
}

func (d *MemoryDocument) RemoveInlineStyleProperty(_ context.Context, el port.ElementHandle, prop string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "RemoveInlineStyleProperty")
	e, err := d.lookup(el)
	if err != nil {
		return err
	}
	delete(e.style, prop)
	return nil
}

func (d *MemoryDocument) InlineStyleValue(_ context.Context, el port.ElementHandle, prop string) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "InlineStyleValue")
	e, err := d.lookup(el)
	if err != nil {
		return "", false, err
	}
	v, ok := e.style[prop]
	return v, ok, nil
}

func (d *MemoryDocument) MergeAttributes(_ context.Context, el port.ElementHandle, attrs map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "MergeAttributes")
	e, err := d.lookup(el)
	if err != nil {
		return err
	}
	for k, v := range attrs {
		e.attrs[k] = v
	}
	return nil
}

func (d *MemoryDocument) RemoveAttribute(_ context.Context, el port.ElementHandle, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "RemoveAttribute")
	e, err := d.lookup(el)
	if err != nil {
		return err
	}
	delete(e.attrs, name)
	return nil
}

func (d *MemoryDocument) Attribute(_ context.Context, el port.ElementHandle, name string) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "Attribute")
	e, err := d.lookup(el)
	if err != nil {
		return "", false, err
	}
	v, ok := e.attrs[name]
	return v, ok, nil
}

// lookup requires d.mu.
func (d *MemoryDocument) lookup(el port.ElementHandle) (*element, error) {
	e, ok := d.elements[el]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrElementNotFound, el)
	}
	return e, nil
}

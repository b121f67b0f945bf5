package dom_test

import (
	"context"
	"testing"

	"github.com/bnema/scrollguard/internal/application/port"
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/bnema/scrollguard/internal/infrastructure/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDocument_MergeAndRemoveStyle(t *testing.T) {
	ctx := context.Background()
	doc := dom.NewMemoryDocument("", 0)
	container, err := doc.ScrollContainer(ctx)
	require.NoError(t, err)
	assert.Equal(t, port.ElementHandle(entity.DefaultScrollContainerSelector), container)

	require.NoError(t, doc.MergeInlineStyle(ctx, container, map[string]string{"color": "red"}))
	require.NoError(t, doc.MergeInlineStyle(ctx, container, map[string]string{"top": "-10px"}))

	assert.Equal(t, map[string]string{"color": "red", "top": "-10px"}, doc.InlineStyle(container))

	require.NoError(t, doc.RemoveInlineStyleProperty(ctx, container, "top"))
	_, ok, err := doc.InlineStyleValue(ctx, container, "top")
	require.NoError(t, err)
	assert.False(t, ok, "removed property must be absent, not blank")
	assert.Equal(t, map[string]string{"color": "red"}, doc.InlineStyle(container))
}

func TestMemoryDocument_FixedContainerHidesScrollOffset(t *testing.T) {
	ctx := context.Background()
	doc := dom.NewMemoryDocument("body", 300)

	y, err := doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, y)

	require.NoError(t, doc.MergeInlineStyle(ctx, "body", map[string]string{entity.StylePosition: entity.PositionFixed}))
	y, err = doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, y)

	require.NoError(t, doc.RemoveInlineStyleProperty(ctx, "body", entity.StylePosition))
	y, err = doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, y)
}

func TestMemoryDocument_NegativeScrollClamps(t *testing.T) {
	ctx := context.Background()
	doc := dom.NewMemoryDocument("body", 0)

	require.NoError(t, doc.SetScrollY(ctx, -50))
	y, err := doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, y)
}

func TestMemoryDocument_Attributes(t *testing.T) {
	ctx := context.Background()
	doc := dom.NewMemoryDocument("body", 0)

	require.NoError(t, doc.MergeAttributes(ctx, port.RootElement, map[string]string{"data-scroll-lock": "true"}))
	v, ok, err := doc.Attribute(ctx, port.RootElement, "data-scroll-lock")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, doc.RemoveAttribute(ctx, port.RootElement, "data-scroll-lock"))
	_, ok, err = doc.Attribute(ctx, port.RootElement, "data-scroll-lock")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryDocument_UnknownElement(t *testing.T) {
	doc := dom.NewMemoryDocument("body", 0)

	err := doc.MergeInlineStyle(context.Background(), "#missing", map[string]string{"top": "0px"})
	assert.ErrorIs(t, err, port.ErrElementNotFound)
}

func TestMemoryDocument_CallLog(t *testing.T) {
	ctx := context.Background()
	doc := dom.NewMemoryDocument("body", 0)

	_, _ = doc.ScrollY(ctx)
	_ = doc.SetScrollY(ctx, 10)
	_ = doc.SetScrollY(ctx, 20)

	assert.Equal(t, []string{"ScrollY", "SetScrollY", "SetScrollY"}, doc.Calls())
	assert.Equal(t, 2, doc.CallCount("SetScrollY"))

	doc.ResetCalls()
	assert.Empty(t, doc.Calls())
}

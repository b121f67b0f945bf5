package webkit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/scrollguard/internal/application/port"
	portmocks "github.com/bnema/scrollguard/internal/application/port/mocks"
	"github.com/bnema/scrollguard/internal/application/usecase"
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/bnema/scrollguard/internal/infrastructure/headless"
	"github.com/bnema/scrollguard/internal/infrastructure/webkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHeadlessDocument(t *testing.T, container string) (*webkit.ScrollDocument, *headless.Runtime) {
	t.Helper()
	rt, err := headless.New()
	require.NoError(t, err)
	return webkit.NewScrollDocument(rt, container), rt
}

func TestScrollDocument_StyleRoundTrip(t *testing.T) {
	ctx := context.Background()
	doc, rt := newHeadlessDocument(t, "")

	container, err := doc.ScrollContainer(ctx)
	require.NoError(t, err)
	assert.Equal(t, port.ElementHandle("body"), container)

	require.NoError(t, doc.MergeInlineStyle(ctx, container, map[string]string{
		"position": "fixed",
		"top":      "-12px",
	}))

	top, ok, err := doc.InlineStyleValue(ctx, container, "top")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "-12px", top)

	require.NoError(t, doc.RemoveInlineStyleProperty(ctx, container, "top"))
	_, ok, err = doc.InlineStyleValue(ctx, container, "top")
	require.NoError(t, err)
	assert.False(t, ok)

	css, err := rt.Evaluate(ctx, "document.body.style.cssText")
	require.NoError(t, err)
	assert.Equal(t, "position: fixed;", css)
}

func TestScrollDocument_Attributes(t *testing.T) {
	ctx := context.Background()
	doc, _ := newHeadlessDocument(t, "body")

	_, ok, err := doc.Attribute(ctx, port.RootElement, "data-scroll-lock")
	require.NoError(t, err)
	assert.False(t, ok)

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

func TestScrollDocument_ScrollOffset(t *testing.T) {
	ctx := context.Background()
	doc, _ := newHeadlessDocument(t, "body")

	require.NoError(t, doc.SetScrollY(ctx, 420))
	y, err := doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 420, y)
}

func TestScrollDocument_MissingElement(t *testing.T) {
	ctx := context.Background()
	doc, _ := newHeadlessDocument(t, "#missing")

	err := doc.MergeInlineStyle(ctx, "#missing", map[string]string{"top": "0px"})
	assert.ErrorIs(t, err, port.ErrElementNotFound)

	_, _, err = doc.InlineStyleValue(ctx, "#missing", "top")
	assert.ErrorIs(t, err, port.ErrElementNotFound)
}

func TestScrollDocument_SelectorIsEscaped(t *testing.T) {
	ctx := context.Background()
	doc, _ := newHeadlessDocument(t, "body")

	// A quote in the selector must not break out of the string literal.
	err := doc.RemoveAttribute(ctx, `body"); throw new Error("injected`, "x")
	assert.ErrorIs(t, err, port.ErrElementNotFound)
}

func TestScrollDocument_EvaluatorErrorIsWrapped(t *testing.T) {
	ctx := context.Background()
	eval := portmocks.NewMockScriptEvaluator(t)
	doc := webkit.NewScrollDocument(eval, "body")
	boom := errors.New("web process crashed")

	eval.EXPECT().Evaluate(mock.Anything, mock.AnythingOfType("string")).Return(nil, boom).Once()

	err := doc.SetScrollY(ctx, 10)
	assert.ErrorIs(t, err, boom)
}

func TestScrollDocument_UnexpectedScrollResult(t *testing.T) {
	ctx := context.Background()
	eval := portmocks.NewMockScriptEvaluator(t)
	doc := webkit.NewScrollDocument(eval, "body")

	eval.EXPECT().Evaluate(mock.Anything, mock.Anything).Return("not a number", nil).Once()

	_, err := doc.ScrollY(ctx)
	assert.Error(t, err)
}

func TestScrollDocument_DrivesScrollLock(t *testing.T) {
	ctx := context.Background()
	doc, rt := newHeadlessDocument(t, "body")
	require.NoError(t, doc.SetScrollY(ctx, 240))
	uc := usecase.NewScrollLockUseCase(doc, "")

	require.NoError(t, uc.AddProhibition(ctx, "modal"))
	require.NoError(t, uc.AddProhibition(ctx, "tooltip"))

	css, err := rt.Evaluate(ctx, "document.body.style.cssText")
	require.NoError(t, err)
	assert.Equal(t, "position: fixed; top: -240px; width: 100%;", css)
	rootCSS, err := rt.Evaluate(ctx, "document.documentElement.style.cssText")
	require.NoError(t, err)
	assert.Equal(t, "overflow-y: hidden;", rootCSS)

	require.NoError(t, uc.RemoveProhibition(ctx, "modal"))
	locked, err := uc.IsScrollDisabled(ctx)
	require.NoError(t, err)
	assert.True(t, locked)

	require.NoError(t, uc.RemoveProhibition(ctx, "tooltip"))
	locked, err = uc.IsScrollDisabled(ctx)
	require.NoError(t, err)
	assert.False(t, locked)

	y, err := doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 240, y)
	css, err = rt.Evaluate(ctx, "document.body.style.cssText")
	require.NoError(t, err)
	assert.Equal(t, "", css)
	marker, err := rt.Evaluate(ctx, "document.documentElement.hasAttribute('"+entity.DefaultLockMarkerAttribute+"')")
	require.NoError(t, err)
	assert.Equal(t, false, marker)
}

func TestScrollDocument_CustomContainer(t *testing.T) {
	ctx := context.Background()
	doc, rt := newHeadlessDocument(t, "#app")
	require.NoError(t, rt.AddContainer(ctx, "app"))
	require.NoError(t, doc.SetScrollY(ctx, 90))
	uc := usecase.NewScrollLockUseCase(doc, "")

	require.NoError(t, uc.DisableScroll(ctx))
	top, err := rt.Evaluate(ctx, "document.querySelector('#app').style.getPropertyValue('top')")
	require.NoError(t, err)
	assert.Equal(t, "-90px", top)

	require.NoError(t, uc.EnableScroll(ctx))
	y, err := doc.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, y)
}

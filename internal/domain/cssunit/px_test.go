package cssunit_test

import (
	"math"
	"testing"

	"github.com/bnema/scrollguard/internal/domain/cssunit"
	"github.com/stretchr/testify/assert"
)

func TestPx(t *testing.T) {
	assert.Equal(t, "-240px", cssunit.Px(-240))
	assert.Equal(t, "0px", cssunit.Px(0))
	assert.Equal(t, "15px", cssunit.Px(15))
}

func TestParsePx(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"negative", "-240px", -240},
		{"positive", "32px", 32},
		{"zero", "0px", 0},
		{"empty", "", 0},
		{"whitespace", "  -12px ", -12},
		{"fraction truncates", "-12.8px", -12},
		{"unitless", "64", 64},
		{"garbage", "auto", 0},
		{"overflow clamps high", "1e30px", math.MaxInt},
		{"overflow clamps low", "-1e30px", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cssunit.ParsePx(tt.input))
		})
	}
}

func TestPxRoundTrip(t *testing.T) {
	for _, n := range []int{-1200, -1, 0, 1, 987} {
		assert.Equal(t, n, cssunit.ParsePx(cssunit.Px(n)))
	}
}

// Package cssunit formats and parses CSS pixel lengths.
package cssunit

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const pxSuffix = "px"

// Px formats n as a pixel length, e.g. -240 -> "-240px".
func Px(n int) string {
	return strconv.Itoa(n) + pxSuffix
}

// ParsePx reads the integer part of a pixel length the way parseInt does:
// "-240px" -> -240, "12.7px" -> 12. Empty or malformed values yield 0.
func ParsePx(value string) int {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, pxSuffix)
	if value == "" {
		return 0
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

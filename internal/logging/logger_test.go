package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/scrollguard/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel("debug", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel(" WARN ", zerolog.InfoLevel))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("verbose", zerolog.InfoLevel))
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = logging.FormatJSON
	cfg.Output = &buf

	ctx := logging.WithContext(context.Background(), logging.New(cfg))
	ctx = logging.WithComponent(ctx, "scroll-lock")
	logging.FromContext(ctx).Info().Msg("locked")

	assert.Contains(t, buf.String(), `"component":"scroll-lock"`)
	assert.Contains(t, buf.String(), `"message":"locked"`)
}

func TestFromContext_NoLoggerIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.FromContext(context.Background()).Debug().Msg("dropped")
	})
}

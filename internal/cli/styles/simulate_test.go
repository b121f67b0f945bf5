package styles_test

import (
	"testing"

	"github.com/bnema/scrollguard/internal/application/usecase"
	"github.com/bnema/scrollguard/internal/cli/styles"
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSimulationRenderer_Render(t *testing.T) {
	r := styles.NewSimulationRenderer(styles.NewTheme())

	out := r.Render([]styles.SimulationRow{
		{Step: "start", Snapshot: usecase.ScrollLockSnapshot{ScrollY: 240}},
		{Step: "add:modal", Snapshot: usecase.ScrollLockSnapshot{
			Prohibitions: []entity.ProhibitionID{"modal", "tooltip"},
			DOMLocked:    true,
			FrozenTop:    "-240px",
		}},
	})

	assert.Contains(t, out, "PROHIBITIONS")
	assert.Contains(t, out, "add:modal")
	assert.Contains(t, out, "-240px")
	assert.Contains(t, out, "modal, tooltip")
	assert.Contains(t, out, "240")
}

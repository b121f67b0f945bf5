package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/scrollguard/internal/application/usecase"
)

// SimulationRow is the state observed after one simulated step.
type SimulationRow struct {
	Step     string
	Snapshot usecase.ScrollLockSnapshot
}

// SimulationRenderer renders simulated scroll lock steps as a table.
type SimulationRenderer struct {
	theme *Theme
}

// NewSimulationRenderer creates a new renderer with the given theme.
func NewSimulationRenderer(theme *Theme) *SimulationRenderer {
	return &SimulationRenderer{theme: theme}
}

// Render renders one row per step.
func (r *SimulationRenderer) Render(rows []SimulationRow) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("STEP", "LOCKED", "SCROLL Y", "TOP", "PROHIBITIONS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Header
			}
			return r.theme.Cell
		})

	for _, row := range rows {
		t.Row(
			row.Step,
			r.renderLocked(row.Snapshot.DOMLocked),
			strconv.Itoa(row.Snapshot.ScrollY),
			orDash(row.Snapshot.FrozenTop),
			renderProhibitions(row.Snapshot),
		)
	}
	return t.Render()
}

func (r *SimulationRenderer) renderLocked(locked bool) string {
	if locked {
		return r.theme.WarningStyle.Render("yes")
	}
	return r.theme.Highlight.Render("no")
}

func renderProhibitions(snap usecase.ScrollLockSnapshot) string {
	if len(snap.Prohibitions) == 0 {
		return "-"
	}
	ids := make([]string, len(snap.Prohibitions))
	for i, id := range snap.Prohibitions {
		ids[i] = string(id)
	}
	return strings.Join(ids, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/bnema/scrollguard/internal/cli"
	"github.com/bnema/scrollguard/internal/cli/styles"
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/bnema/scrollguard/internal/logging"
)

var simulateScrollY int

var simulateCmd = &cobra.Command{
	Use:   "simulate <step>...",
	Short: "Drive the scroll lock against a headless page",
	Long: `Run a sequence of scroll lock operations against a headless page and
print the lock state after every step.

Steps:
  disable        add the anonymous prohibition
  enable         release every prohibition
  add:<id>       add a named prohibition
  remove:<id>    release a named prohibition
  scroll:<y>     scroll the page to y (ignored by the page while locked)

Examples:
  scrollguard simulate --scroll-y 240 add:modal add:tooltip remove:modal remove:tooltip
  scrollguard simulate disable disable enable`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVar(&simulateScrollY, "scroll-y", 0, "initial vertical scroll offset")
}

// stepKind enumerates simulation steps.
type stepKind int

const (
	stepDisable stepKind = iota
	stepEnable
	stepAdd
	stepRemove
	stepScroll
)

type step struct {
	raw  string
	kind stepKind
	id   entity.ProhibitionID
	y    int
}

// parseSteps validates every step before anything runs.
func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		s, err := parseStep(arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(arg string) (step, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(arg), ":")
	s := step{raw: arg}

	switch name {
	case "disable", "enable":
		if hasValue {
			return s, fmt.Errorf("step %q takes no argument", arg)
		}
		s.kind = stepDisable
		if name == "enable" {
			s.kind = stepEnable
		}
	case "add", "remove":
		if value == "" {
			return s, fmt.Errorf("step %q needs a prohibition id, e.g. %s:modal", arg, name)
		}
		s.kind = stepAdd
		if name == "remove" {
			s.kind = stepRemove
		}
		s.id = entity.ProhibitionID(value)
	case "scroll":
		y, err := cast.ToIntE(value)
		if value == "" || err != nil {
			return s, fmt.Errorf("step %q needs an integer offset, e.g. scroll:120", arg)
		}
		s.kind = stepScroll
		s.y = y
	default:
		return s, fmt.Errorf("unknown step %q", arg)
	}
	return s, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	steps, err := parseSteps(args)
	if err != nil {
		return err
	}

	ctx := logging.WithComponent(app.Ctx(), "simulate")
	page, err := app.NewPage(ctx, simulateScrollY)
	if err != nil {
		return fmt.Errorf("create headless page: %w", err)
	}

	rows, err := simulate(ctx, page, steps)
	renderer := styles.NewSimulationRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(rows))
	return err
}

// simulate runs steps and records the state after each. Rows collected
// before a failing step are returned with the error.
func simulate(ctx context.Context, page *cli.Page, steps []step) ([]styles.SimulationRow, error) {
	rows := make([]styles.SimulationRow, 0, len(steps)+1)

	snap, err := page.Lock.Snapshot(ctx)
	if err != nil {
		return rows, err
	}
	rows = append(rows, styles.SimulationRow{Step: "start", Snapshot: snap})

	for _, s := range steps {
		if err := runStep(ctx, page, s); err != nil {
			return rows, fmt.Errorf("step %q: %w", s.raw, err)
		}
		snap, err := page.Lock.Snapshot(ctx)
		if err != nil {
			return rows, err
		}
		rows = append(rows, styles.SimulationRow{Step: s.raw, Snapshot: snap})
	}
	return rows, nil
}

func runStep(ctx context.Context, page *cli.Page, s step) error {
	switch s.kind {
	case stepDisable:
		return page.Lock.DisableScroll(ctx)
	case stepEnable:
		return page.Lock.EnableScroll(ctx)
	case stepAdd:
		return page.Lock.AddProhibition(ctx, s.id)
	case stepRemove:
		return page.Lock.RemoveProhibition(ctx, s.id)
	case stepScroll:
		return page.Document.SetScrollY(ctx, s.y)
	default:
		return fmt.Errorf("unhandled step kind %d", s.kind)
	}
}

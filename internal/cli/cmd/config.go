package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/scrollguard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	t := app.Theme
	cfg := app.Config
	out := cmd.OutOrStdout()
	line := func(key, value string) {
		fmt.Fprintf(out, "%s %s\n", t.Subtle.Render(key), t.Highlight.Render(value))
	}

	fmt.Fprintln(out, t.Title.Render("Configuration"))
	line("scroll_lock.marker_attribute", cfg.ScrollLock.MarkerAttribute)
	line("scroll_lock.container_selector", cfg.ScrollLock.ContainerSelector)
	line("logging.level", cfg.Logging.Level)
	line("logging.format", cfg.Logging.Format)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

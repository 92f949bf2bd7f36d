package main

import (
	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/paths"
)

// newPathsCmd creates the paths command.
func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List every known Fluorine location",
		Long: `List the data directory and the locations derived from it.

  data         the data root
  stylesheets  user themes (*.qss)
  logs         log files
  legacy       pre-migration data (~/.local/share/fluorine)
  config       fluorine CLI config directory
  base         installation directory ($MO2_BASE_DIR or the executable's dir)

Examples:
  fluorine paths          # Table of locations
  fluorine paths --json   # Structured output`,
		Args: cobra.NoArgs,
		RunE: runPaths,
	}
}

func runPaths(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	if _, err := env.resolve(false); err != nil {
		printer.Error(err)
		return err
	}

	report := paths.Gather(paths.Options{
		Resolver:  env.resolver,
		Config:    env.cfg,
		ConfigDir: env.cfgDir,
	})

	if printer.IsJSON() {
		return printer.WriteJSON(report)
	}

	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		exists := "no"
		if e.Exists {
			exists = "yes"
		}
		rows = append(rows, []string{e.Name, exists, e.Path})
	}
	printer.Table([]string{"NAME", "EXISTS", "PATH"}, rows)
	if !report.Data.HomeKnown() {
		printer.Warn("HOME is unset; paths use the shared %s fallback", report.Data.Home)
	}
	return nil
}

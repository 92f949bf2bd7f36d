// Package main provides the entry point for the fluorine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/config"
	"github.com/CamRed25/Fluorine-Manager/internal/envfile"
	"github.com/CamRed25/Fluorine-Manager/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2026-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the fluorine CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fluorine",
		Short: "Locate and manage the Fluorine Manager data directory",
		Long: `Fluorine - locate and manage where Fluorine Manager keeps its data.

All state lives under ~/.var/app/com.fluorine.manager. When HOME is unset the
directory falls back to /tmp/.var/app/com.fluorine.manager, which is shared
between users and lost on reboot; use --strict to fail instead.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'fluorine --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Env files fill in variables that are not exported; the environment wins.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := output.ParseColorMode(flagValue(cmd, "color")); err != nil {
			return output.NewUserErrorWithCause(err.Error(), err)
		}
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config, else warn)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. ~/.config/fluorine/env
func loadEnvFiles() {
	global := ""
	if dir := config.Dir(); dir != "" {
		global = filepath.Join(dir, "env")
	}
	_, _ = envfile.Load(".env.local", ".env", global)
}

func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "paths", Title: "Path Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newDirCmd(), "paths")
	addGroupedCommand(cmd, newPathsCmd(), "paths")
	addGroupedCommand(cmd, newThemesCmd(), "paths")

	addGroupedCommand(cmd, newMigrateCmd(), "admin")
	addGroupedCommand(cmd, newDoctorCmd(), "admin")
	addGroupedCommand(cmd, newConfigCmd(), "admin")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/migrate"
	"github.com/CamRed25/Fluorine-Manager/internal/output"
	"github.com/CamRed25/Fluorine-Manager/internal/paths"
)

type migrateFlags struct {
	dryRun  bool
	from    string
	require bool
}

// newMigrateCmd creates the migrate command.
func newMigrateCmd() *cobra.Command {
	flags := &migrateFlags{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move legacy data into the data directory",
		Long: `Move data from ~/.local/share/fluorine to ~/.var/app/com.fluorine.manager.

Safe to run repeatedly: nothing happens when there is no legacy directory,
and a data directory that already holds files is never overwritten. Moves
across filesystems fall back to copying, and the legacy directory is only
removed once every file is copied.

Exit codes:
  0  migrated, nothing to do, or skipped
  1  HOME is unknown
  2  filesystem error
  3  skipped because the target is populated (only with --require)

Examples:
  fluorine migrate              # Migrate if needed
  fluorine migrate --dry-run    # Show what would happen
  fluorine migrate --from /old  # Migrate from a custom location`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report what would happen without moving anything")
	cmd.Flags().StringVar(&flags.from, "from", "", "Legacy directory (default: legacy_dir from config, else ~/.local/share/fluorine)")
	cmd.Flags().BoolVar(&flags.require, "require", false, "Exit with a conflict error when the migration is skipped")
	return cmd
}

func runMigrate(cmd *cobra.Command, flags *migrateFlags) error {
	printer := newPrinter(cmd)
	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	// Migrating into the /tmp fallback would move user data somewhere it
	// does not survive a reboot.
	res, err := env.resolve(true)
	if err != nil {
		printer.Error(err)
		return err
	}

	from := flags.from
	if from == "" {
		from = paths.LegacyDir(env.cfg, res.Home)
	}

	result, err := migrate.Run(cmd.Context(), migrate.Options{
		From:   from,
		To:     res.Path,
		DryRun: flags.dryRun,
		Logger: &env.log,
	})
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("migration failed", err)
		printer.Error(sysErr)
		return sysErr
	}

	var exitErr error
	if result.Outcome == migrate.OutcomeSkipped && flags.require {
		exitErr = output.NewConflictError("migration skipped: " + result.Reason)
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
		return exitErr
	}

	printMigrateHuman(printer, result)
	return exitErr
}

func printMigrateHuman(printer *output.Printer, result *migrate.Result) {
	switch result.Outcome {
	case migrate.OutcomeNotNeeded:
		printer.Muted("Nothing to migrate: %s does not exist", result.From)
	case migrate.OutcomeSkipped:
		printer.Warn("Skipped: %s (%s left in place)", result.Reason, result.From)
	case migrate.OutcomeDryRun:
		printer.Print("Would move %d file(s)\n", result.Files)
		printer.KeyValue("from", result.From)
		printer.KeyValue("to", result.To)
	case migrate.OutcomeMoved, migrate.OutcomeCopied:
		_ = printer.Success(map[string]any{
			"message": "Migrated legacy data",
		})
		printer.KeyValue("from", result.From)
		printer.KeyValue("to", result.To)
		printer.KeyValue("files", strconv.Itoa(result.Files))
	}
}

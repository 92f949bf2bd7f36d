package main

import (
	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/basedir"
	"github.com/CamRed25/Fluorine-Manager/internal/doctor"
	"github.com/CamRed25/Fluorine-Manager/internal/output"
	"github.com/CamRed25/Fluorine-Manager/internal/paths"
	"github.com/CamRed25/Fluorine-Manager/internal/stylesheets"
)

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	fix   bool
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the data directory setup and suggest fixes",
		Long: `Check the Fluorine data directory setup and suggest fixes.

Checks:
  Home Directory  HOME is set (otherwise data falls back to /tmp)
  Data Directory  the data directory exists and is writable
  Legacy Data     no unmigrated ~/.local/share/fluorine remains
  Config          the config file parses and validates
  Stylesheets     theme directories can be read

Examples:
  fluorine doctor           # Run all checks
  fluorine doctor --fix     # Create a missing data directory
  fluorine doctor --quiet   # Only show warnings and failures
  fluorine doctor --json    # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fix, "fix", false, "Create the data directory if it is missing")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	printer := newPrinter(cmd)
	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	report := paths.Gather(paths.Options{
		Resolver:  env.resolver,
		Config:    env.cfg,
		ConfigDir: env.cfgDir,
	})
	base, _ := basedir.Base()

	// Never create a data directory under the /tmp fallback.
	fix := flags.fix && report.Data.HomeKnown()

	result := doctor.Run(cmd.Context(), doctor.Inputs{
		Report:    report,
		ConfigErr: env.cfgErr,
		ThemeDirs: stylesheets.SearchDirs(base, "", report.Data.Path, env.cfg.ExtraStylesheetDirs),
		Fix:       fix,
	})

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"version": version,
			"checks":  result.Checks,
			"summary": result.Summary,
		})
	}

	outputDoctorHuman(printer, result, flags.quiet)
	return nil
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctor.Result, quiet bool) {
	printer.Section("fluorine doctor v" + version)

	for _, check := range result.Checks {
		if quiet && check.Status == doctor.Pass {
			continue
		}
		printer.Print("  %s  %s: %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("      -> %s\n", check.Hint)
		}
	}

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(doctor.Pass), result.Summary.Passed,
		statusIcon(doctor.Warn), result.Summary.Warnings,
		statusIcon(doctor.Fail), result.Summary.Failed,
	)
}

// statusIcon returns the icon for a check status.
func statusIcon(status doctor.Status) string {
	switch status {
	case doctor.Pass:
		return "ok"
	case doctor.Warn:
		return "!!"
	case doctor.Fail:
		return "XX"
	default:
		return "??"
	}
}

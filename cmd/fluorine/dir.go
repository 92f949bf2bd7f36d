package main

import (
	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
	"github.com/CamRed25/Fluorine-Manager/internal/output"
)

type dirFlags struct {
	strict bool
	ensure bool
}

// newDirCmd creates the dir command.
func newDirCmd() *cobra.Command {
	flags := &dirFlags{}
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Print the Fluorine data directory",
		Long: `Print the Fluorine data directory, $HOME/.var/app/com.fluorine.manager.

The path is computed from HOME only: nothing is created or checked unless
--ensure is given. When HOME is unset the path falls back to
/tmp/.var/app/com.fluorine.manager and a warning is logged; --strict (or
strict_home in the config file) turns that into an error.

Examples:
  fluorine dir                 # Print the path
  cd "$(fluorine dir)"         # Use it in scripts
  fluorine dir --ensure        # Create it along with stylesheets/ and logs/
  fluorine dir --strict --json # Fail if HOME is unknown, JSON output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDir(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail instead of falling back to /tmp when HOME is unset")
	cmd.Flags().BoolVar(&flags.ensure, "ensure", false, "Create the directory and its standard subdirectories")
	return cmd
}

func runDir(cmd *cobra.Command, flags *dirFlags) error {
	printer := newPrinter(cmd)
	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	res, err := env.resolve(flags.strict)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.ensure {
		if err := datadir.Ensure(cmd.Context(), res.Path); err != nil {
			sysErr := output.NewSystemErrorWithCause("creating data directory", err)
			printer.Error(sysErr)
			return sysErr
		}
		env.log.Debug().Str("path", res.Path).Msg("data directory ready")
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"path":       res.Path,
			"home":       res.Home,
			"source":     res.Source.String(),
			"home_known": res.HomeKnown(),
			"ensured":    flags.ensure,
		})
	}
	printer.Path(res.Path)
	return nil
}

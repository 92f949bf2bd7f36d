package main

import (
	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/basedir"
	"github.com/CamRed25/Fluorine-Manager/internal/stylesheets"
)

// newThemesCmd creates the themes command.
func newThemesCmd() *cobra.Command {
	var instance string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available stylesheets",
		Long: `List Qt stylesheets (*.qss) available to Fluorine Manager.

Directories are searched in order: <base>/stylesheets, <instance>/stylesheets,
<data dir>/stylesheets, then extra_stylesheet_dirs from the config file. When
two directories hold the same file name, the earlier one wins.

Examples:
  fluorine themes                          # Themes from install and data dir
  fluorine themes --instance ~/Games/skyrim # Include an instance's themes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemes(cmd, instance)
		},
	}
	cmd.Flags().StringVar(&instance, "instance", "", "Instance directory to search")
	return cmd
}

func runThemes(cmd *cobra.Command, instance string) error {
	printer := newPrinter(cmd)
	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	res, err := env.resolve(false)
	if err != nil {
		printer.Error(err)
		return err
	}

	base, err := basedir.Base()
	if err != nil {
		env.log.Debug().Err(err).Msg("no base directory")
	}
	dirs := stylesheets.SearchDirs(base, instance, res.Path, env.cfg.ExtraStylesheetDirs)

	themes, skipped := stylesheets.Discover(dirs)
	for _, s := range skipped {
		env.log.Warn().Str("dir", s.Dir).Str("error", s.Err).Msg("skipping unreadable stylesheet directory")
	}

	if printer.IsJSON() {
		if themes == nil {
			themes = []stylesheets.Theme{}
		}
		if skipped == nil {
			skipped = []stylesheets.Skipped{}
		}
		return printer.WriteJSON(map[string]any{"dirs": dirs, "themes": themes, "skipped": skipped})
	}

	if len(themes) == 0 {
		printer.Muted("No themes found in:")
		for _, dir := range dirs {
			printer.Muted("  %s", dir)
		}
		return nil
	}
	rows := make([][]string, 0, len(themes))
	for _, theme := range themes {
		rows = append(rows, []string{theme.Name, theme.Path})
	}
	printer.Table([]string{"NAME", "PATH"}, rows)
	return nil
}

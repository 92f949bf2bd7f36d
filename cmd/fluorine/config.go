package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CamRed25/Fluorine-Manager/internal/config"
	"github.com/CamRed25/Fluorine-Manager/internal/output"
)

// newConfigCmd creates the config command and its subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the fluorine config file",
		Long: `Show or create the fluorine config file.

The file lives at $FLUORINE_CONFIG_HOME/config.yaml, falling back to
$XDG_CONFIG_HOME/fluorine/config.yaml and ~/.config/fluorine/config.yaml.

Keys:
  strict_home            fail instead of using /tmp when HOME is unset
  legacy_dir             pre-migration data directory
  extra_stylesheet_dirs  more directories to search for themes
  log_level              debug, info, warn or error`,
		Args: cobra.NoArgs,
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	dir := config.Dir()
	cfg, err := config.Load(dir)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	path := ""
	exists := false
	if dir != "" {
		path = config.Path(dir)
		_, statErr := os.Stat(path)
		exists = statErr == nil
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"path":   path,
			"exists": exists,
			"config": cfg,
		})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return output.NewSystemErrorWithCause("encoding config", err)
	}
	if exists {
		printer.Muted("# %s", path)
	} else {
		printer.Muted("# %s (not created, showing defaults)", path)
	}
	printer.Print("%s", data)
	return nil
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file with default values.

Refuses to overwrite an existing file unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	printer := newPrinter(cmd)
	dir := config.Dir()
	if dir == "" {
		err := output.NewUserError("cannot determine config directory; set FLUORINE_CONFIG_HOME")
		printer.Error(err)
		return err
	}

	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !force {
		conflict := output.NewConflictError("config already exists: " + path + " (use --force to overwrite)")
		printer.Error(conflict)
		return conflict
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		sysErr := output.NewSystemErrorWithCause("checking "+path, err)
		printer.Error(sysErr)
		return sysErr
	}

	if err := config.Save(dir, &config.Config{LogLevel: "warn"}); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing config", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": "Wrote " + path,
		"path":    path,
	})
}

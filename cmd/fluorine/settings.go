package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/CamRed25/Fluorine-Manager/internal/config"
	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
	"github.com/CamRed25/Fluorine-Manager/internal/logger"
	"github.com/CamRed25/Fluorine-Manager/internal/output"
)

// flagValue reads a flag from the command or, failing that, the root's
// persistent flags.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return flagValue(cmd, "json") == "true"
}

// newPrinter returns a printer for stdout with errors routed to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(flagValue(cmd, "color"), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// appEnv is the per-invocation state shared by commands.
type appEnv struct {
	cfg      *config.Config
	cfgDir   string
	cfgErr   error
	log      zerolog.Logger
	resolver datadir.Resolver
}

// loadAppEnv loads the config file and builds the logger. A broken config
// file is logged and replaced by defaults; callers that care inspect cfgErr.
func loadAppEnv(cmd *cobra.Command) (*appEnv, error) {
	env := &appEnv{cfgDir: config.Dir()}

	cfg, err := config.Load(env.cfgDir)
	if err != nil {
		env.cfgErr = err
		cfg = &config.Config{}
	}
	env.cfg = cfg

	levelName := flagValue(cmd, "log-level")
	if levelName == "" {
		levelName = cfg.LogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	errW := cmd.ErrOrStderr()
	color := output.ResolveColorMode(flagValue(cmd, "color"), output.IsTTY(errW))
	env.log = logger.New(errW, level, color)

	if env.cfgErr != nil {
		env.log.Warn().Err(env.cfgErr).Msg("ignoring config file")
	}
	return env, nil
}

// resolve resolves the data directory. With strict set (by flag or config)
// an unknown home is a user error; otherwise the fallback is logged.
func (e *appEnv) resolve(strict bool) (datadir.Resolution, error) {
	res := e.resolver.Resolve()
	if res.HomeKnown() {
		return res, nil
	}
	if strict || e.cfg.StrictHome {
		return res, output.NewUserErrorWithCause(datadir.ErrHomeUnknown.Error(), datadir.ErrHomeUnknown)
	}
	e.log.Warn().
		Str("env", datadir.HomeEnv).
		Str("path", res.Path).
		Msg("home directory unknown, using shared fallback")
	return res, nil
}

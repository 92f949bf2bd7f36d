package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/CamRed25/Fluorine-Manager/internal/basedir"
	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
	"github.com/CamRed25/Fluorine-Manager/internal/doctor"
	"github.com/CamRed25/Fluorine-Manager/internal/migrate"
	"github.com/CamRed25/Fluorine-Manager/internal/paths"
	"github.com/CamRed25/Fluorine-Manager/internal/stylesheets"
)

// --- data_dir ---

// DataDirInput is the input for the data_dir tool.
type DataDirInput struct {
	Strict bool `json:"strict,omitempty" jsonschema:"fail when HOME is unset instead of falling back to /tmp"`
}

// DataDirOutput is the output for the data_dir tool.
type DataDirOutput struct {
	Path      string `json:"path"       jsonschema:"the data directory"`
	Home      string `json:"home"       jsonschema:"home directory the path was built from"`
	HomeKnown bool   `json:"home_known" jsonschema:"false when the /tmp fallback was used"`
}

func handleDataDir(env *Env) mcp.ToolHandlerFor[DataDirInput, DataDirOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in DataDirInput) (*mcp.CallToolResult, DataDirOutput, error) {
		res := env.Resolver.Resolve()
		if (in.Strict || env.config().StrictHome) && !res.HomeKnown() {
			return nil, DataDirOutput{}, datadir.ErrHomeUnknown
		}
		return nil, DataDirOutput{Path: res.Path, Home: res.Home, HomeKnown: res.HomeKnown()}, nil
	}
}

// --- paths ---

// PathsInput is the input for the paths tool (no parameters needed).
type PathsInput struct{}

// PathsOutput is the output for the paths tool.
type PathsOutput struct {
	HomeKnown bool          `json:"home_known" jsonschema:"false when the /tmp fallback was used"`
	Entries   []paths.Entry `json:"entries"    jsonschema:"named locations"`
}

func handlePaths(env *Env) mcp.ToolHandlerFor[PathsInput, PathsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ PathsInput) (*mcp.CallToolResult, PathsOutput, error) {
		report := env.gather()
		return nil, PathsOutput{HomeKnown: report.Data.HomeKnown(), Entries: report.Entries}, nil
	}
}

// --- themes ---

// ThemesInput is the input for the themes tool.
type ThemesInput struct {
	Instance string `json:"instance,omitempty" jsonschema:"instance directory whose stylesheets are searched before the data directory"`
}

// ThemesOutput is the output for the themes tool.
type ThemesOutput struct {
	Dirs    []string              `json:"dirs"    jsonschema:"directories searched, in priority order"`
	Themes  []stylesheets.Theme   `json:"themes"  jsonschema:"discovered themes"`
	Skipped []stylesheets.Skipped `json:"skipped" jsonschema:"directories that exist but could not be read"`
}

func handleThemes(env *Env) mcp.ToolHandlerFor[ThemesInput, ThemesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ThemesInput) (*mcp.CallToolResult, ThemesOutput, error) {
		res := env.Resolver.Resolve()
		if env.config().StrictHome && !res.HomeKnown() {
			return nil, ThemesOutput{}, datadir.ErrHomeUnknown
		}
		dirs := env.themeDirs(in.Instance, res.Path)
		themes, skipped := stylesheets.Discover(dirs)
		for _, s := range skipped {
			env.logger().Debug().Str("dir", s.Dir).Str("error", s.Err).Msg("skipping unreadable stylesheet directory")
		}
		if themes == nil {
			themes = []stylesheets.Theme{}
		}
		if skipped == nil {
			skipped = []stylesheets.Skipped{}
		}
		return nil, ThemesOutput{Dirs: dirs, Themes: themes, Skipped: skipped}, nil
	}
}

// --- doctor ---

// DoctorInput is the input for the doctor tool (no parameters needed).
type DoctorInput struct{}

func handleDoctor(env *Env) mcp.ToolHandlerFor[DoctorInput, doctor.Result] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ DoctorInput) (*mcp.CallToolResult, doctor.Result, error) {
		res := doctor.Run(ctx, doctor.Inputs{
			Report:    env.gather(),
			ConfigErr: env.ConfigErr,
			ThemeDirs: env.themeDirs("", env.Resolver.Dir()),
		})
		return nil, *res, nil
	}
}

// --- migrate ---

// MigrateInput is the input for the migrate tool.
type MigrateInput struct {
	DryRun bool `json:"dry_run,omitempty" jsonschema:"report what would happen without moving anything"`
}

func handleMigrate(env *Env) mcp.ToolHandlerFor[MigrateInput, migrate.Result] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MigrateInput) (*mcp.CallToolResult, migrate.Result, error) {
		report := env.gather()
		if !report.Data.HomeKnown() {
			return nil, migrate.Result{}, fmt.Errorf("refusing to migrate into %s: home directory unknown", report.Data.Path)
		}
		res, err := migrate.Run(ctx, migrate.Options{
			From:   report.Lookup(paths.NameLegacy),
			To:     report.Data.Path,
			DryRun: in.DryRun,
			Logger: env.logger(),
		})
		if err != nil {
			return nil, migrate.Result{}, err
		}
		return nil, *res, nil
	}
}

// --- helpers ---

func (e *Env) gather() paths.Report {
	return paths.Gather(paths.Options{
		Resolver:  e.Resolver,
		Config:    e.config(),
		ConfigDir: e.ConfigDir,
	})
}

func (e *Env) themeDirs(instance, data string) []string {
	base, _ := basedir.Base()
	return stylesheets.SearchDirs(base, instance, data, e.config().ExtraStylesheetDirs)
}

// Package mcp provides a Model Context Protocol server for fluorine.
// It exposes data directory lookups as MCP tools so agents can find where
// Fluorine keeps its state.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/CamRed25/Fluorine-Manager/internal/config"
	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
	"github.com/CamRed25/Fluorine-Manager/internal/logger"
)

// Env is what the tool handlers resolve paths against.
type Env struct {
	Resolver  datadir.Resolver
	Config    *config.Config
	ConfigDir string
	ConfigErr error
	Logger    *zerolog.Logger
}

func (e *Env) config() *config.Config {
	if e.Config == nil {
		return &config.Config{}
	}
	return e.Config
}

func (e *Env) logger() *zerolog.Logger {
	if e.Logger == nil {
		nop := logger.Nop()
		return &nop
	}
	return e.Logger
}

// NewServer creates an MCP server with all fluorine tools registered.
func NewServer(version string, env *Env) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "fluorine",
		Version: version,
	}, nil)
	registerTools(server, env)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations marks tools that change the filesystem without deleting
// user data.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, env *Env) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "data_dir",
		Description: "Return the Fluorine data directory and whether HOME was known or the /tmp fallback was used. With strict=true, fail instead of falling back.",
		Annotations: readOnlyAnnotations(),
	}, handleDataDir(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "paths",
		Description: "List every known Fluorine location (data, stylesheets, logs, legacy, config, base) and whether each exists.",
		Annotations: readOnlyAnnotations(),
	}, handlePaths(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "themes",
		Description: "List discovered .qss stylesheets. The first directory providing a file name wins.",
		Annotations: readOnlyAnnotations(),
	}, handleThemes(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "doctor",
		Description: "Run health checks on the data directory, legacy data, config and themes.",
		Annotations: readOnlyAnnotations(),
	}, handleDoctor(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "migrate",
		Description: "Move legacy data from ~/.local/share/fluorine into the data directory. Never overwrites a populated target. Use dry_run to preview.",
		Annotations: writeAnnotations(),
	}, handleMigrate(env))
}

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	fluorinemcp "github.com/CamRed25/Fluorine-Manager/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run fluorine as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "fluorine": {
        "command": "fluorine",
        "args": ["serve"]
      }
    }
  }

Available tools: data_dir, paths, themes, doctor, migrate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadAppEnv(cmd)
			if err != nil {
				return err
			}
			server := fluorinemcp.NewServer(buildVersion(), &fluorinemcp.Env{
				Resolver:  env.resolver,
				Config:    env.cfg,
				ConfigDir: env.cfgDir,
				ConfigErr: env.cfgErr,
				Logger:    &env.log,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

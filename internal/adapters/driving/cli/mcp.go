package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/mcp"
	"github.com/custodia-labs/pitchmatch/internal/session"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can match
investors, draft messages and track outreach.

The server keeps one session for its whole lifetime, so projects and
messages created through it persist until it stops. With a yaml catalog
and catalog.watch enabled, edits to the catalog file are picked up live.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default, for desktop assistants)
  pitchmatch mcp serve --demo

  # HTTP mode (for MCP Inspector, remote access)
  pitchmatch mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "pitchmatch": {
        "command": "/path/to/pitchmatch",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// mcpPorts exposes a session to the MCP server.
func mcpPorts(sess *session.Session) *mcp.Ports {
	return &mcp.Ports{
		Catalog:     sess.Catalog,
		Match:       sess.Matches,
		Project:     sess.Projects,
		Message:     sess.Messages,
		Report:      sess.Reports,
		Outreach:    sess.Outreach,
		FounderName: sess.FounderName(),
		Now:         sess.Clock.Now,
	}
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(mcpPorts(sess))
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(commandContext(cmd), addr)
	}

	return server.Run(commandContext(cmd))
}

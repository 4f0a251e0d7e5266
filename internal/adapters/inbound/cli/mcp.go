package cli

import (
	mcpadapter "github.com/luxura/luxura/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Luxura MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start Luxura MCP server (stdio)",
		Long:  "Start the Luxura MCP server using stdio transport. One configurator session lives for the lifetime of the server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			s := mcpadapter.NewLuxuraMCPServer(e.catalog, e.cfg, e.logger)
			return server.ServeStdio(s)
		},
	}
}

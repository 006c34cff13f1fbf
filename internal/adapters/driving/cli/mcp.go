package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/ireum-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/ireum-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead, e.g. for MCP Inspector.

The server reloads the dictionary when the dictionary file, the meanings
file or the dictionary database changes, e.g. after 'ireum import'.
Use --watch=false to keep the data loaded at startup.

Tools: evaluate_name, fortune, stroke_pairs, suggest_names.
Resources: ireum://fortunes, ireum://fortunes/{number}.

Examples:
  # Stdio mode
  ireum mcp serve

  # HTTP mode
  ireum mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "ireum": {
        "command": "/path/to/ireum",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", true, "reload when dictionary sources change")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Evaluation: evaluationService,
		Candidate:  candidateService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	watchSources, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}
	if watchSources && len(sources) > 0 {
		ctx, cancel := context.WithCancel(cmd.Context())
		wait, err := startReloader(ctx, server, sources)
		if err != nil {
			cancel()
			return err
		}
		defer func() {
			cancel()
			wait()
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// startReloader rebuilds the services whenever one of paths changes and
// installs them on the server. It stops when ctx is done; the returned func
// blocks until it has.
func startReloader(ctx context.Context, server *mcp.Server, paths []string, opts ...watch.Option) (func(), error) {
	w := watch.New(paths, opts...)
	changes, err := w.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("watch dictionary sources: %w", err)
	}
	logger.Debug("Watching %v", w.Paths())

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer w.Close()
		for change := range changes {
			logger.Info("%s changed, reloading dictionary", change.Path)
			if err := reloadServices(ctx, server); err != nil {
				logger.Warn("Reload failed, keeping previous dictionary: %v", err)
			}
		}
	}()
	return func() { <-done }, nil
}

func reloadServices(ctx context.Context, server *mcp.Server) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	built, _, err := buildServices(ctx, *settings)
	if err != nil {
		return err
	}
	return server.SetPorts(&mcp.Ports{
		Evaluation: built.Evaluation,
		Candidate:  built.Candidate,
	})
}

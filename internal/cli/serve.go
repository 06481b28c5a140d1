package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fibernet/pkg/api"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cable length builds over HTTP",
		Long: `Serve cable length builds over HTTP.

Endpoints:
  GET  /health   liveness probe
  POST /v1/mst   build the sites in the request body`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", DefaultConfig().Serve.Addr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	srv := api.NewServer(c.newRunner(), logger, api.Options{Method: c.Config.Method})
	return srv.ListenAndServe(ctx, addr)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hydrodraw/pkg/api"
	"github.com/matzehuels/hydrodraw/pkg/observability"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve projects and drawing operations over HTTP under /api.

The listen address and CORS origins come from the config file, the
HYDRODRAW_ADDR and CORS_ORIGINS environment variables, or --addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			observability.NewLogHooks(c.Logger).Register()
			defer observability.Reset()

			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			c.Logger.Info("store ready", "backend", cfg.Store.Backend)
			srv := api.New(c.newService(st), api.WithConfig(cfg), api.WithLogger(c.Logger))
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8001)")
	return cmd
}

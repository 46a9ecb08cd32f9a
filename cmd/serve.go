package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/hoehwa/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversation form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx, cmd, "")
		if err != nil {
			return err
		}
		defer rt.Close()

		addr := rt.cfg.Server.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}
		idle, _ := cmd.Flags().GetDuration("session-idle")

		srv := web.NewServer(rt.controller, web.NewSessions(idle), rt.logger)
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().Duration("session-idle", 2*time.Hour, "Forget browser sessions idle for this long (0 keeps them)")
}

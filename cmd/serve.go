package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/quote-wizard/internal/lookup"
	"github.com/sells-group/quote-wizard/internal/web"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "serve: migrate store")
		}

		loc := localizer()
		c := newClients(cfg.API)
		sessions := web.NewSessions(c.Policy, st, loc, cfg.Server.SessionTTL())
		catalog := lookup.NewCatalog(c.Lookup, cfg.Lookup.CacheTTL())

		server, err := web.NewServer(web.Options{
			Sessions:       sessions,
			Catalog:        catalog,
			Localizer:      loc,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			CookieSecure:   cfg.Server.CookieSecure,
			SessionTTL:     cfg.Server.SessionTTL(),
		})
		if err != nil {
			return err
		}

		go sessions.PurgeEvery(ctx, cfg.Server.PurgeInterval())

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           server.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		shutdownDone := make(chan struct{})
		go func() {
			defer close(shutdownDone)
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zap.L().Warn("server shutdown", zap.Error(err))
			}
		}()

		zap.L().Info("starting server",
			zap.Int("port", port),
			zap.String("api", cfg.API.BaseURL),
			zap.String("store", cfg.Store.Driver),
			zap.String("locale", loc.Tag().String()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}
		<-shutdownDone

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

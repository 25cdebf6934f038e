package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	internalassets "github.com/altora/backoffice/internal/assets"
	internalserver "github.com/altora/backoffice/internal/server"
	"github.com/altora/backoffice/modules"
	"github.com/altora/backoffice/modules/customers/presentation/controllers"
	"github.com/altora/backoffice/pkg/application"
	"github.com/altora/backoffice/pkg/configuration"
	"github.com/altora/backoffice/pkg/eventbus"
	"github.com/altora/backoffice/pkg/metrics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			logger := conf.Logger()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
			if err != nil {
				return err
			}
			defer pool.Close()

			app := application.New(&application.ApplicationOptions{
				Pool:               pool,
				EventBus:           eventbus.NewEventPublisher(logger),
				Logger:             logger,
				Bundle:             application.LoadBundle(),
				SupportedLanguages: conf.SupportedLanguages,
			})
			if err := modules.Load(app, modules.BuiltInModules...); err != nil {
				return err
			}
			app.RegisterNavItems(modules.NavLinks...)
			app.RegisterHashFsAssets(internalassets.HashFS)
			app.RegisterControllers(
				controllers.NewStaticFilesController(app.HashFsAssets()),
			)
			if conf.Metrics.Enabled {
				app.RegisterControllers(metrics.NewPrometheusController(conf.Metrics.Path))
			}

			serverInstance, err := internalserver.Default(&internalserver.DefaultOptions{
				Logger:        logger,
				Configuration: conf,
				Application:   app,
				Pool:          pool,
			})
			if err != nil {
				return err
			}

			stopCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			errCh := make(chan error, 1)
			go func() {
				errCh <- serverInstance.Start(conf.SocketAddress)
			}()
			logger.Infof("listening on %s", conf.SocketAddress)

			select {
			case err := <-errCh:
				return err
			case <-stopCtx.Done():
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancelShutdown()
				return serverInstance.Shutdown(shutdownCtx)
			}
		},
	}
}

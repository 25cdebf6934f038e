package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/altora/backoffice/modules"
	"github.com/altora/backoffice/pkg/application"
	"github.com/altora/backoffice/pkg/configuration"
	"github.com/altora/backoffice/pkg/eventbus"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema for all registered modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			logger := conf.Logger()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
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
			if err := app.Migrations().Run(ctx, pool); err != nil {
				return err
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

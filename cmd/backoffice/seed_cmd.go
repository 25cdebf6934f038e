package main

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/altora/backoffice/modules"
	"github.com/altora/backoffice/modules/customers/domain/entities/title"
	"github.com/altora/backoffice/modules/customers/services"
	"github.com/altora/backoffice/pkg/application"
	"github.com/altora/backoffice/pkg/composables"
	"github.com/altora/backoffice/pkg/configuration"
	"github.com/altora/backoffice/pkg/eventbus"
)

var defaultTitles = []string{"mr", "mrs", "ms", "dr", "prof"}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default salutation titles",
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

			seedCtx := composables.WithPool(ctx, pool)
			seedCtx = composables.WithTenantID(seedCtx, conf.TenantID)
			titleService := app.Service(services.TitleService{}).(*services.TitleService)
			for _, name := range defaultTitles {
				err := titleService.Create(seedCtx, &title.CreateDTO{Name: name})
				if errors.Is(err, title.ErrNameTaken) {
					continue
				}
				if err != nil {
					return err
				}
				logger.Infof("seeded title %q", name)
			}
			return nil
		},
	}
}

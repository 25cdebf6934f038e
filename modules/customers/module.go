package customers

import (
	"embed"

	"github.com/altora/backoffice/modules/customers/infrastructure/persistence"
	"github.com/altora/backoffice/modules/customers/presentation/controllers"
	"github.com/altora/backoffice/modules/customers/services"
	"github.com/altora/backoffice/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

//go:embed infrastructure/persistence/schema/customers-schema.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&MigrationFiles)
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterServices(
		services.NewTitleService(persistence.NewTitleRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewTitleController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "customers"
}

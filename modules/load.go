package modules

import (
	"slices"

	"github.com/altora/backoffice/modules/customers"
	"github.com/altora/backoffice/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		customers.NewModule(),
	}

	NavLinks = slices.Concat(
		customers.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}

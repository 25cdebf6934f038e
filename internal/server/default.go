package server

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/altora/backoffice/modules/customers/presentation/controllers"
	"github.com/altora/backoffice/pkg/application"
	"github.com/altora/backoffice/pkg/configuration"
	"github.com/altora/backoffice/pkg/constants"
	"github.com/altora/backoffice/pkg/middleware"
	"github.com/altora/backoffice/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

// Default assembles the HTTP server with the standard middleware stack.
// Controller-specific middleware (localization, page context) is attached by
// each controller in Register.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware(
		middleware.RequestLogger(options.Logger),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Provide(constants.TenantIDKey, options.Configuration.TenantID),
	)

	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(app),
		controllers.MethodNotAllowed(),
	)
	return serverInstance, nil
}

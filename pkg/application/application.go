package application

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/altora/backoffice/pkg/eventbus"
	"github.com/altora/backoffice/pkg/types"
)

// Controller is a self-registering group of HTTP routes.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires its services, controllers, locales and schema into the app.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	DB() *pgxpool.Pool
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger
	Bundle() *i18n.Bundle
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	NavItems() []types.NavigationItem
	GetSupportedLanguages() []string
	Migrations() *MigrationRegistry
	HashFsAssets() []*hashfs.FS

	RegisterControllers(controllers ...Controller)
	RegisterHashFsAssets(fs ...*hashfs.FS)
	RegisterServices(services ...interface{})
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterNavItems(items ...types.NavigationItem)
	RegisterLocaleFiles(files *embed.FS)

	// Service returns the registered service matching the type of the given
	// zero value, e.g. app.Service(services.TitleService{}).(*services.TitleService).
	Service(service interface{}) interface{}
}

type ApplicationOptions struct {
	Pool               *pgxpool.Pool
	EventBus           eventbus.EventBus
	Logger             *logrus.Logger
	Bundle             *i18n.Bundle
	SupportedLanguages []string
}

func LoadBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	return bundle
}

func New(opts *ApplicationOptions) Application {
	supported := opts.SupportedLanguages
	if len(supported) == 0 {
		supported = []string{"en"}
	}
	return &application{
		pool:       opts.Pool,
		eventBus:   opts.EventBus,
		logger:     opts.Logger,
		bundle:     opts.Bundle,
		supported:  supported,
		services:   map[reflect.Type]interface{}{},
		migrations: &MigrationRegistry{},
	}
}

type application struct {
	pool        *pgxpool.Pool
	eventBus    eventbus.EventBus
	logger      *logrus.Logger
	bundle      *i18n.Bundle
	supported   []string
	controllers []Controller
	middleware  []mux.MiddlewareFunc
	navItems    []types.NavigationItem
	services    map[reflect.Type]interface{}
	migrations  *MigrationRegistry
	hashFs      []*hashfs.FS
}

func (a *application) DB() *pgxpool.Pool                 { return a.pool }
func (a *application) EventPublisher() eventbus.EventBus { return a.eventBus }
func (a *application) Logger() *logrus.Logger            { return a.logger }
func (a *application) Bundle() *i18n.Bundle              { return a.bundle }
func (a *application) Controllers() []Controller         { return a.controllers }
func (a *application) Middleware() []mux.MiddlewareFunc  { return a.middleware }
func (a *application) NavItems() []types.NavigationItem  { return a.navItems }
func (a *application) GetSupportedLanguages() []string   { return a.supported }
func (a *application) Migrations() *MigrationRegistry    { return a.migrations }
func (a *application) HashFsAssets() []*hashfs.FS        { return a.hashFs }

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) RegisterHashFsAssets(fs ...*hashfs.FS) {
	a.hashFs = append(a.hashFs, fs...)
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) RegisterNavItems(items ...types.NavigationItem) {
	a.navItems = append(a.navItems, items...)
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		t := reflect.TypeOf(service)
		if t.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("service %T must be registered as a pointer", service))
		}
		a.services[t.Elem()] = service
	}
}

func (a *application) Service(service interface{}) interface{} {
	svc, ok := a.services[reflect.TypeOf(service)]
	if !ok {
		panic(fmt.Sprintf("service %T not registered", service))
	}
	return svc
}

func (a *application) RegisterLocaleFiles(files *embed.FS) {
	err := fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		if _, err := a.bundle.LoadMessageFileFS(files, path); err != nil {
			return fmt.Errorf("failed to load locale file %q: %w", path, err)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}

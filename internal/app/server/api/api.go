package api

import (
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	abonoAPI "cobros/internal/app/server/api/http/abono"
	clienteAPI "cobros/internal/app/server/api/http/cliente"
	compraAPI "cobros/internal/app/server/api/http/compra"
	healthAPI "cobros/internal/app/server/api/http/health"
	"cobros/internal/app/server/api/http/middleware"
	"cobros/internal/app/server/api/http/middleware/auth"
	"cobros/internal/app/server/api/http/middleware/logger"
	sessionAPI "cobros/internal/app/server/api/http/session"
	"cobros/internal/app/server/config"
	"cobros/internal/domain/abono"
	"cobros/internal/domain/cliente"
	"cobros/internal/domain/compra"
	"cobros/internal/domain/session"
	"cobros/internal/infrastructure/storage"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Session *sessionAPI.Handler
	Cliente *clienteAPI.Handler
	Compra  *compraAPI.Handler
	Abono   *abonoAPI.Handler
}

// New builds the router with every operation registered through huma.
func New(repos *storage.Repositories, cfg config.Auth, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Cobros API", "1.0.0")
	humaConfig.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(repos, cfg, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Cliente.SetupRoutes(API)
	h.Compra.SetupRoutes(API)
	h.Abono.SetupRoutes(API)

	return mux
}

func handlers(repos *storage.Repositories, cfg config.Auth, log *slog.Logger) *Handlers {
	sessionService := session.NewService(repos.Sessions, session.Options{
		AdminUser:    cfg.AdminUser,
		PasswordHash: cfg.PasswordHash,
		Secret:       cfg.Secret,
		TokenTTL:     cfg.TokenTTL,
	}, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(repos, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	sessionHandler := sessionAPI.NewHandler(sessionService, log, middlewares.GetAllAndClear())

	clienteService := cliente.NewService(repos.Clientes, cliente.NewValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	clienteHandler := clienteAPI.NewHandler(clienteService, log, middlewares.GetAllAndClear())

	compraService := compra.NewService(repos.Compras, clienteService, compra.NewValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	compraHandler := compraAPI.NewHandler(compraService, log, middlewares.GetAllAndClear())

	abonoService := abono.NewService(repos.Abonos, compraService, abono.NewValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	abonoHandler := abonoAPI.NewHandler(abonoService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Session: sessionHandler,
		Cliente: clienteHandler,
		Compra:  compraHandler,
		Abono:   abonoHandler,
	}
}

// schemaNamer prefixes schema names with the Go package, since every handler
// package declares its own request and response types.
func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	pkg := path.Base(t.PkgPath())
	if t.Name() == "" || pkg == "." || pkg == "/" {
		return name
	}
	return strings.ToUpper(pkg[:1]) + pkg[1:] + name
}

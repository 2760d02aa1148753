package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/atelier-dourado/backoffice/modules"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/eventbus"
	"github.com/atelier-dourado/backoffice/pkg/identity"
	"github.com/atelier-dourado/backoffice/pkg/middleware"
	"github.com/atelier-dourado/backoffice/pkg/server"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newIdentityProvider(conf *configuration.Configuration) (identity.Provider, error) {
	if err := conf.Auth.Validate(); err != nil {
		return nil, err
	}
	var providers []identity.Provider
	if conf.Auth.JWTSecret != "" {
		providers = append(providers, identity.NewJWTProvider(conf.Auth.JWTSecret))
	}
	if conf.Auth.StaticAdminToken != "" {
		providers = append(providers, identity.NewStaticTokenProvider(conf.Auth.StaticAdminToken, "local-admin"))
	}
	return identity.NewChainProvider(providers...), nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	provider, err := newIdentityProvider(conf)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		panic(err)
	}
	app.RegisterMiddleware(
		middleware.WithLogger(logger, conf),
		middleware.WithPool(pool),
		middleware.Authenticate(provider),
	)

	logger.WithField("address", conf.SocketAddress).Info("starting http server")
	if err := server.NewHTTPServer(app, conf.AllowedOrigins).Start(conf.SocketAddress); err != nil {
		panic(err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/outputfield/web/handler"
	"github.com/outputfield/web/modules/rsvp"
	"github.com/outputfield/web/modules/signup"
	"github.com/outputfield/web/pkg/config"
	"github.com/outputfield/web/pkg/httpserver"
	"github.com/outputfield/web/pkg/logger"
	"github.com/outputfield/web/pkg/mailchimp"
	"github.com/outputfield/web/pkg/mongo"
	"github.com/outputfield/web/pkg/requestid"
	"github.com/outputfield/web/pkg/sanity"
	"github.com/outputfield/web/pkg/ui"
)

var errUnknownStore = errors.New("unknown content store")

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var mcCfg mailchimp.Config
	if err := config.Load(&mcCfg); err != nil {
		return err
	}

	store, checks, cleanup, err := openStore(ctx, app.ContentStore)
	if err != nil {
		return err
	}
	defer cleanup()

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  ui.ErrorPage,
		ErrorToast: ui.ErrorToast,
	})

	signupSvc := signup.NewService(mailchimp.New(mcCfg), store,
		signup.WithLogger(log),
		signup.WithErrorHandler(errorHandler),
	)

	router := newRouter(routerDeps{
		log:          log,
		errorHandler: errorHandler,
		signup:       signupSvc.Handle(),
		rsvp:         rsvp.NewService(rsvp.Showcase, errorHandler).Handle(),
		staticDir:    app.StaticDir,
		corsOrigins:  app.CORSOrigins,
		readiness:    checks,
	})

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	log.Info("starting",
		slog.String("content_store", app.ContentStore),
		slog.String("addr", srvCfg.Addr),
	)
	return httpserver.New(srvCfg, router, httpserver.WithLogger(log)).Run(ctx)
}

// openStore connects the configured content store and returns its readiness
// checks and a cleanup func.
func openStore(ctx context.Context, driver string) (signup.DocumentStore, []httpserver.Check, func(), error) {
	noop := func() {}

	switch driver {
	case storeSanity:
		var cfg sanity.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, noop, err
		}
		store := signup.NewSanityStore(sanity.New(cfg))
		return store, []httpserver.Check{store.Healthcheck}, noop, nil

	case storeMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, noop, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, nil, noop, err
		}
		cleanup := func() { _ = client.Disconnect(context.WithoutCancel(ctx)) }
		store := signup.NewMongoStore(mongo.Collection(client, cfg))
		return store, []httpserver.Check{mongo.Healthcheck(client)}, cleanup, nil

	case storeMemory:
		return signup.NewMemoryStore(), nil, noop, nil
	}

	return nil, nil, noop, fmt.Errorf("%w: %q", errUnknownStore, driver)
}

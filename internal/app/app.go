package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/RollNo21-crypto/reznico-parts/internal/config"
	envconfig "github.com/RollNo21-crypto/reznico-parts/internal/config/env"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/closer"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
	"github.com/RollNo21-crypto/reznico-parts/internal/repository/bootstrap"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/health"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initSeed,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if config.C().Storage.OrdersBackend() != envconfig.BackendPostgres {
		return nil
	}

	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

// initSeed loads the supplier registry and, in demo mode, a starter
// catalog of parts and reorder rules.
func (a *app) initSeed(ctx context.Context) error {
	if err := bootstrap.SuppliersBootstrap(ctx, a.di.SupplierRepository(ctx)); err != nil {
		logger.Error(ctx, "failed to seed suppliers", logger.ErrorF(err))
		return err
	}

	if !config.C().Storage.SeedDemoData() {
		return nil
	}

	if err := bootstrap.PartsBootstrap(ctx, a.di.PartRepository(ctx)); err != nil {
		logger.Error(ctx, "failed to seed parts", logger.ErrorF(err))
		return err
	}
	if err := bootstrap.RulesBootstrap(ctx, a.di.RuleRepository(ctx)); err != nil {
		logger.Error(ctx, "failed to seed reorder rules", logger.ErrorF(err))
		return err
	}

	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/inventory", a.di.InventoryHandler(ctx).Routes())
		r.Mount("/suppliers", a.di.SupplierHandler(ctx).Routes())
		r.Mount("/quotes", a.di.PricingHandler(ctx).Routes())
		r.Mount("/orders", a.di.OrderHandler(ctx).Routes())
		r.Mount("/rules", a.di.RulesHandler(ctx).Routes())
		r.Mount("/usage", a.di.UsageHandler(ctx).Routes())
		r.Mount("/reports", a.di.ReportsHandler(ctx).Routes())
		r.Mount("/notifications", a.di.NotificationHandler(ctx).Routes())
		r.Mount("/monitor", a.di.MonitorHandler(ctx).Routes())
	})

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	cfg := config.C()

	if cfg.Monitor.Autostart() {
		a.di.MonitorService(ctx).Start(ctx)
		closer.AddNamed("Reorder monitor", func(ctx context.Context) error {
			a.di.MonitorService(ctx).Stop()
			return nil
		})
	}

	eg, egCtx := errgroup.WithContext(ctx)

	if cfg.Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(ctx,
				"🚀 supplier updates consumer running",
				logger.String("kafka_broker", cfg.Kafka.Brokers()[0]),
			)
			if err := a.di.SupplierConsumer(ctx).RunSupplierUpdatesConsume(ctx); err != nil {
				return err
			}

			return nil
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 parts server listening",
			logger.String("address", cfg.Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		sdCtx, cancel := context.WithTimeout( //nolint:contextcheck
			context.Background(),
			cfg.Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"resumeapi/docs"
	"resumeapi/internal/auth"
	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/database/migration"
	handlers "resumeapi/internal/http/handler"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/llm"
	"resumeapi/internal/otel"
	"resumeapi/internal/repository"
	"resumeapi/internal/repository/mongodb"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/service"
	"resumeapi/internal/storage"
)

func runServe(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) error {
	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.StoreDriver, err)
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(cctx); err != nil {
			log.WithError(err).Warn("store close failed")
		}
	}()

	if err := prepareSchema(ctx, cfg, store, log); err != nil {
		return err
	}

	objStore, err := newStorage(cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := newApp(cfg, log, reg, store, objStore)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "driver": cfg.StoreDriver, "storage": cfg.Upload.Backend}).Info("server starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}

func runMigrate(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) error {
	store, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.StoreDriver, err)
	}
	defer store.Close(context.Background())
	return prepareSchema(ctx, cfg, store, log)
}

func prepareSchema(ctx context.Context, cfg *config.AppConfig, store *database.Store, log logrus.FieldLogger) error {
	switch store.Driver {
	case config.DriverPostgres:
		return migration.EnsureMigrated(ctx, store.SQL, log, cfg.Database.Host)
	default:
		if err := database.EnsureMongoIndexes(ctx, store.Mongo); err != nil {
			return fmt.Errorf("ensure mongo indexes: %w", err)
		}
		log.WithField("event", "mongo_indexes_ready").Info("indexes ensured")
		return nil
	}
}

func newStorage(cfg *config.AppConfig) (storage.Storage, error) {
	if cfg.Upload.Backend == config.BackendMinIO {
		return storage.NewMinIO(cfg.MinIO)
	}
	return storage.NewLocal(afero.NewOsFs(), cfg.Upload.Dir), nil
}

func newRepositories(store *database.Store) (repository.ResumeRepository, repository.UserRepository) {
	if store.Driver == config.DriverPostgres {
		return postgres.NewResumePostgres(store.SQL), postgres.NewUserPostgres(store.SQL)
	}
	return mongodb.NewResumeMongo(store.Mongo), mongodb.NewUserMongo(store.Mongo)
}

// newApp wires services and middleware into a Fiber app.
func newApp(cfg *config.AppConfig, log *logrus.Logger, reg *prometheus.Registry, store *database.Store, objStore storage.Storage) (*fiber.App, error) {
	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("init tokens: %w", err)
	}

	resumeRepo, userRepo := newRepositories(store)
	profiles, err := service.NewProfileService(llm.NewOpenAIParser(cfg.OpenAI, log), reg, log)
	if err != nil {
		return nil, fmt.Errorf("init profile service: %w", err)
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "resumeapi",
		ErrorHandler: handlers.ErrorHandler(log),
		BodyLimit:    cfg.Upload.MaxContentLength,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		app.Static("/static", cfg.StaticDir)
	} else if !errors.Is(err, os.ErrNotExist) && err != nil {
		log.WithError(err).Warn("static directory unavailable")
	}

	// An empty host and scheme list make Swagger UI call the host it was loaded
	// from, so the shared spec is never written per request.
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = []string{}
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, handlers.Deps{
		Store:     store.Pinger(),
		Auth:      service.NewAuthService(userRepo, tokens),
		Resumes:   service.NewResumeService(objStore, resumeRepo),
		Templates: service.NewTemplateService(),
		Profiles:  profiles,
	})

	return app, nil
}

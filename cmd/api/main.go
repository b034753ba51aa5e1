package main

import (
	"context"
	"time"

	"github.com/posbridge/brink-insights-api/infrastructure/database/postgres"
	"github.com/posbridge/brink-insights-api/infrastructure/integrator/brink"
	"github.com/posbridge/brink-insights-api/infrastructure/integrator/brink/brinkclient"
	"github.com/posbridge/brink-insights-api/infrastructure/integrator/ukg"
	"github.com/posbridge/brink-insights-api/infrastructure/integrator/worldtime"
	"github.com/posbridge/brink-insights-api/infrastructure/repository"
	"github.com/posbridge/brink-insights-api/internal/api"
	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/scheduler"
	"github.com/posbridge/brink-insights-api/internal/usecases/busdate"
	"github.com/posbridge/brink-insights-api/internal/usecases/locating"
	"github.com/posbridge/brink-insights-api/internal/usecases/reporting"
	"github.com/posbridge/brink-insights-api/internal/usecases/tokening"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	locationRepo := repository.NewLocationRepository(pgConn)
	tenantRepo := repository.NewTenantRepository(pgConn)

	locationCache := locating.NewCache(locationRepo)

	brinkIntegrator := brink.New(cfg, brinkclient.NewClient(cfg))
	resolver := busdate.NewService(worldtime.NewClient(cfg))

	dashboardService := reporting.NewService(cfg, locationCache, resolver, brinkIntegrator)
	tokenService := tokening.NewService(tenantRepo, ukg.NewClient(cfg))

	locationSyncService := scheduler.NewLocationSyncService(locationCache, cfg)
	if err := locationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start location sync scheduler")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		tokenService,
		locationCache,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

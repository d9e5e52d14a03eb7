package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/database/postgres"
	"github.com/adpilot/adpilot-api/infrastructure/integrator/openai"
	"github.com/adpilot/adpilot-api/infrastructure/integrator/openai/openaiclient"
	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/api"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/scheduler"
	"github.com/adpilot/adpilot-api/internal/usecases/authenticating"
	"github.com/adpilot/adpilot-api/internal/usecases/billing"
	"github.com/adpilot/adpilot-api/internal/usecases/caching"
	"github.com/adpilot/adpilot-api/internal/usecases/crediting"
	"github.com/adpilot/adpilot-api/internal/usecases/generating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	creditRepo := repository.NewCreditRepository(pgConn)
	cacheRepo := repository.NewResponseCacheRepository(pgConn)
	promptRepo := repository.NewPromptRepository(pgConn)

	creditManager := crediting.NewService(creditRepo, cfg)
	authenticator := authenticating.NewService(userRepo, creditManager, cfg)
	responseCache := caching.NewService(cacheRepo)

	openaiClient := openaiclient.NewClient(cfg)
	adGenerator := openai.New(cfg, openaiClient)

	orchestrator := generating.NewService(adGenerator, responseCache, creditManager, promptRepo, cfg)
	paymentProcessor := billing.NewService(creditManager, cfg)

	cacheCleanupService := scheduler.NewCacheCleanupService(cacheRepo, cfg)
	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start cache cleanup scheduler")
	} else {
		logrus.Info("cache cleanup scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		orchestrator,
		creditManager,
		paymentProcessor,
		promptRepo,
		cacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens and verifies the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

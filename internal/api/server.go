package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/api/handler"
	"github.com/adpilot/adpilot-api/internal/api/handler/router"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/scheduler"
	"github.com/adpilot/adpilot-api/internal/usecases/authenticating"
	"github.com/adpilot/adpilot-api/internal/usecases/billing"
	"github.com/adpilot/adpilot-api/internal/usecases/crediting"
	"github.com/adpilot/adpilot-api/internal/usecases/generating"
	"github.com/adpilot/adpilot-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	orchestrator generating.Orchestrator,
	creditManager crediting.CreditManager,
	paymentProcessor billing.PaymentProcessor,
	promptRepo repository.PromptRepository,
	cacheCleanupService *scheduler.CacheCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		CacheCleanupService: cacheCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Generation(orchestrator)...),
		router.WithRoutes(handler.Credits(creditManager)...),
		router.WithRoutes(handler.Billing(paymentProcessor)...),
		router.WithRoutes(handler.Prompts(promptRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	// Wait for a termination signal or context cancellation
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server stopped")
	return nil
}

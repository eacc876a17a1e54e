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
	"github.com/vfg2006/influencer-match-api/internal/api/handler"
	"github.com/vfg2006/influencer-match-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/scheduler"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-match-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator   authenticating.Authenticator
	Catalog         catalog.Catalog
	Searcher        searching.InfluencerSearcher
	Ledger          matching.MatchLedger
	ProfileResolver profiling.ProfileResolver
	ContactDriver   outreach.ContactDriver
	AutoContactSync *scheduler.AutoContactSyncService
}

type Server struct {
	httpServer *http.Server
}

func NewHandler(services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Brands(services.Catalog)...),
		router.WithRoutes(handler.Matches(services.Catalog, services.Searcher, services.Ledger, services.ProfileResolver)...),
		router.WithRoutes(handler.Campaigns(services.Catalog, services.ContactDriver)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{
			AutoContactSyncService: services.AutoContactSync,
		})...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	).Then(rt)
}

func New(config *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run atende até receber SIGINT/SIGTERM ou o contexto ser cancelado
func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/internal/api/handler"
	"github.com/vfg2006/yt-analytics-sync/internal/api/handler/router"
	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"github.com/vfg2006/yt-analytics-sync/internal/scheduler"
	"github.com/vfg2006/yt-analytics-sync/pkg/middleware"
)

// Server é a API de status exposta no modo daemon: healthcheck, status do
// agendador e disparo manual de sincronização.
type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	syncService *scheduler.AnalyticsSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.SyncJobs(syncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run serve até o contexto ser cancelado e então desliga graciosamente.
func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor de status iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor de status")
		}
	}()

	<-ctx.Done()
	logrus.Info("Contexto de aplicação cancelado")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor de status")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor de status")
		return err
	}

	logrus.Info("Servidor de status desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

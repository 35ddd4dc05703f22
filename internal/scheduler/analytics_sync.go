package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"github.com/vfg2006/yt-analytics-sync/internal/usecases/syncing"
)

// AnalyticsSyncConfig representa a configuração do agendador de sincronização de métricas
type AnalyticsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AnalyticsSyncService gerencia o agendamento e execução da sincronização
// incremental diária. Cada disparo usa a janela padrão com retomada do
// checkpoint, então execuções consecutivas só buscam o que falta.
type AnalyticsSyncService struct {
	scheduler *gocron.Scheduler
	config    AnalyticsSyncConfig
	syncer    syncing.Syncer

	syncRunning bool
	syncMutex   sync.Mutex

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRows        int
	lastSyncSkipped     int
	lastSyncError       string
}

// NewAnalyticsSyncService cria uma nova instância do serviço de sincronização agendada
func NewAnalyticsSyncService(syncer syncing.Syncer, appConfig *config.Config) *AnalyticsSyncService {
	syncConfig := AnalyticsSyncConfig{
		CronSchedule: appConfig.AnalyticsSyncJob.CronSchedule,
		SyncEnabled:  appConfig.AnalyticsSyncJob.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &AnalyticsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIncrementalSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// runIncrementalSync executa uma sincronização com a janela padrão e
// retomada do checkpoint. Disparos sobrepostos são ignorados.
func (s *AnalyticsSyncService) runIncrementalSync(ctx context.Context) {
	startTime := time.Now()

	// Os campos de status também são escritos sob o mutex: GetStatus é
	// servido pela API enquanto a sincronização roda em outra goroutine.
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização agendada de métricas diárias")

	report, err := s.syncer.Sync(ctx, syncing.RangeOptions{})
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()

		logrus.WithError(err).Error("Erro na sincronização agendada de métricas")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.lastSyncRows = len(report.Rows)
	s.lastSyncSkipped = report.Skipped
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"range":    report.Range.String(),
		"rows":     len(report.Rows),
		"skipped":  report.Skipped,
	}).Info("Sincronização agendada de métricas concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de métricas
func (s *AnalyticsSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas")
	go s.runIncrementalSync(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_rows":         s.lastSyncRows,
		"last_sync_skipped":      s.lastSyncSkipped,
		"last_sync_error":        s.lastSyncError,
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/cache"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/database/postgres"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/integrator/youtube"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/repository"
	"github.com/vfg2006/yt-analytics-sync/internal/api"
	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"github.com/vfg2006/yt-analytics-sync/internal/scheduler"
	"github.com/vfg2006/yt-analytics-sync/internal/usecases/exporting"
	"github.com/vfg2006/yt-analytics-sync/internal/usecases/syncing"
	"github.com/vfg2006/yt-analytics-sync/pkg/utils"
)

func main() {
	configureLogger()

	startDate := flag.String("start-date", "", "Início do período (YYYY-MM-DD), exige --end-date")
	endDate := flag.String("end-date", "", "Fim do período (YYYY-MM-DD), exige --start-date")
	fullHistory := flag.Bool("full-history", false, "Sincronizar do primeiro vídeo do canal até ontem")
	output := flag.String("output", "", "Caminho do relatório exportado (padrão: derivado do período)")
	daemon := flag.Bool("daemon", false, "Modo daemon: sincronização diária agendada + API de status")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ytclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cliente do YouTube")
	}

	integrator := youtube.New(cfg, client)
	csvCache := cache.NewCSVCache(cfg.Sync.CacheFile)

	syncService := syncing.NewService(integrator, integrator, csvCache, cfg)

	if cfg.Sync.MirrorEnabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		syncService.WithMirrors(repository.NewMetricRowRepository(pgConn))
	}

	if *daemon {
		if *startDate != "" || *endDate != "" || *fullHistory {
			logrus.Fatal("--daemon não aceita --start-date, --end-date ou --full-history")
		}
		runDaemon(ctx, cfg, syncService)
		return
	}

	opts, err := rangeOptions(*startDate, *endDate, *fullHistory)
	if err != nil {
		logrus.Fatal(err)
	}

	report, err := syncService.Sync(ctx, opts)
	if err != nil {
		logrus.WithError(err).Fatal("Sincronização falhou")
	}

	// Execução sem nenhuma linha e com vídeos pulados significa falha total
	// do provedor, não "nada novo"
	if len(report.Rows) == 0 && report.Skipped > 0 {
		logrus.WithField("skipped", report.Skipped).
			Fatal("Nenhuma linha obtida: todos os vídeos falharam no provedor")
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = exporting.DefaultOutputPath(cfg.Sync.OutputDir, report.Range)
	}

	if err := exporting.NewService().WriteCSV(report, outputPath); err != nil {
		logrus.WithError(err).Fatal("Erro ao exportar o relatório")
	}
}

// rangeOptions converte as flags de período nos parâmetros do caso de uso.
// A validação de combinação fica no resolvedor; aqui só se valida o formato.
func rangeOptions(startDate, endDate string, fullHistory bool) (syncing.RangeOptions, error) {
	opts := syncing.RangeOptions{FullHistory: fullHistory}

	if startDate != "" {
		start, err := utils.ParseDate(startDate)
		if err != nil {
			return opts, err
		}
		opts.Start = start
	}

	if endDate != "" {
		end, err := utils.ParseDate(endDate)
		if err != nil {
			return opts, err
		}
		opts.End = end
	}

	return opts, nil
}

// runDaemon mantém o processo vivo com a sincronização diária agendada e a
// API de status respondendo até o sinal de término.
func runDaemon(ctx context.Context, cfg *config.Config, syncer syncing.Syncer) {
	syncScheduler := scheduler.NewAnalyticsSyncService(syncer, cfg)

	if err := syncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador de sincronização de métricas")
	}
	logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")

	server, err := api.New(cfg, syncScheduler)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

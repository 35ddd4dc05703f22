package syncing

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	"github.com/vfg2006/yt-analytics-sync/pkg/utils"
	"golang.org/x/time/rate"
)

// Service orquestra a sincronização: resolve o período, retoma do
// checkpoint, fatia em segmentos e pagina cada vídeo em cada segmento,
// gravando página a página no cache.
type Service struct {
	provider AnalyticsProvider
	catalog  VideoCatalog
	cache    Cache
	mirrors  []RowSink

	pageSize         int64
	monthsPerSegment int
	pageLimiter      *rate.Limiter

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func NewService(provider AnalyticsProvider, catalog VideoCatalog, cache Cache, cfg *config.Config) *Service {
	pageSize := cfg.Sync.PageSize
	if pageSize <= 0 {
		pageSize = 200
	}

	months := cfg.Sync.MonthsPerSegment
	if months <= 0 {
		months = DefaultMonthsPerSegment
	}

	pageInterval := time.Duration(cfg.Sync.PageIntervalMillis) * time.Millisecond
	if pageInterval <= 0 {
		pageInterval = 200 * time.Millisecond
	}

	return &Service{
		provider:         provider,
		catalog:          catalog,
		cache:            cache,
		pageSize:         pageSize,
		monthsPerSegment: months,
		pageLimiter:      rate.NewLimiter(rate.Every(pageInterval), 1),
		sleep:            sleepContext,
		now:              time.Now,
	}
}

// WithMirrors registra destinos adicionais que recebem cada lote gravado no
// cache (ex.: espelho em banco). Falhas nos espelhos não param a execução.
func (s *Service) WithMirrors(mirrors ...RowSink) *Service {
	s.mirrors = append(s.mirrors, mirrors...)
	return s
}

func (s *Service) Sync(ctx context.Context, opts RangeOptions) (*domain.SyncReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}
	log := logrus.WithField("run_id", runID)

	videos, err := s.catalog.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	resolved, err := ResolveDateRange(opts, earliestPublishDate(videos), s.now())
	if err != nil {
		return nil, err
	}

	effective := resolved
	if resume := ResumeStart(s.cache, resolved.Start); resume.After(resolved.Start) {
		log.WithFields(logrus.Fields{
			"default_start": resolved.Start.Format(time.DateOnly),
			"resume_start":  resume.Format(time.DateOnly),
		}).Info("Retomando a partir do checkpoint do cache")

		effective = domain.DateRange{Start: resume, End: resolved.End}
	}

	report := &domain.SyncReport{Range: effective, Videos: videos}

	if effective.Start.After(effective.End) {
		log.Info("Cache já cobre o período solicitado. Nada novo para sincronizar")
		return report, nil
	}

	segments := ChunkDateRange(effective, s.monthsPerSegment)
	log.WithFields(logrus.Fields{
		"range":    effective.String(),
		"segments": len(segments),
		"videos":   len(videos),
	}).Info("Iniciando sincronização de métricas diárias")

	for _, segment := range segments {
		log.WithField("segment", segment.String()).Info("Sincronizando segmento")

		for _, video := range videos {
			rows, columns, err := s.syncVideoSegment(ctx, video, segment)

			if report.Columns == nil && columns != nil {
				report.Columns = columns
			}
			report.Rows = append(report.Rows, rows...)

			if err == nil {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, errSinkWrite) {
				return report, err
			}

			// Falha contida: o vídeo é pulado neste segmento mantendo o que
			// já foi gravado, e a execução segue para o próximo vídeo.
			report.Skipped++
			log.WithFields(logrus.Fields{
				"video_id": video.ID,
				"segment":  segment.String(),
			}).WithError(err).Warn("Vídeo pulado neste segmento após falha no provedor")
		}
	}

	log.WithFields(logrus.Fields{
		"rows":    len(report.Rows),
		"skipped": report.Skipped,
	}).Info("Sincronização concluída")

	return report, nil
}

// earliestPublishDate retorna a menor data de publicação conhecida no
// catálogo, ou nil quando nenhum vídeo a informa.
func earliestPublishDate(videos []domain.Video) *time.Time {
	var earliest *time.Time

	for _, video := range videos {
		if video.PublishedAt == nil {
			continue
		}
		if earliest == nil || video.PublishedAt.Before(*earliest) {
			published := *video.PublishedAt
			earliest = &published
		}
	}

	return earliest
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

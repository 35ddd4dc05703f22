package youtube

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

// YouTubeIntegrator expõe o catálogo e o relatório diário do canal
// autenticado para os casos de uso de sincronização.
type YouTubeIntegrator struct {
	cfg    *config.Config
	Client ytclient.Client
}

func New(cfg *config.Config, client ytclient.Client) *YouTubeIntegrator {
	return &YouTubeIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *YouTubeIntegrator) QueryDailyMetrics(ctx context.Context, query domain.ReportQuery) (*domain.ReportPage, error) {
	page, err := s.Client.QueryReport(ctx, query)
	if err != nil {
		// O classificador de novas tentativas decide o destino deste erro;
		// aqui registramos apenas para depuração.
		logrus.WithFields(logrus.Fields{
			"video_id":    query.VideoID,
			"start_index": query.StartIndex,
			"error":       err.Error(),
		}).Debug("analytics: report query failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"video_id":    query.VideoID,
		"start_index": query.StartIndex,
		"rows":        len(page.Rows),
	}).Debug("analytics: report page received")

	return page, nil
}

func (s *YouTubeIntegrator) ListVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.Client.ListChannelVideos(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("catalog: failed to list channel videos")
		return nil, err
	}

	logrus.WithField("videos", len(videos)).Info("catalog: channel catalog loaded")

	return videos, nil
}

package syncing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

// errGivenUp sinaliza que as tentativas de uma página se esgotaram. É um
// desfecho contido: o chamador pula o vídeo no segmento corrente e segue.
var errGivenUp = errors.New("tentativas esgotadas para a página")

// errSinkWrite sinaliza falha de escrita no cache durável. Diferente das
// falhas do provedor, derruba a execução: sem cache não há progresso seguro.
var errSinkWrite = errors.New("falha ao persistir lote no cache")

// syncVideoSegment pagina as métricas diárias de um vídeo dentro de um
// segmento, entregando cada página ao cache imediatamente após o sucesso
// (flush por página, nunca acumular-e-gravar).
//
// O início efetivo é elevado à data de publicação do vídeo quando esta é
// posterior ao início do segmento; vídeos publicados depois do fim do
// segmento são pulados sem nenhuma chamada ao provedor.
func (s *Service) syncVideoSegment(ctx context.Context, video domain.Video, segment domain.DateRange) ([]domain.MetricRow, []string, error) {
	effectiveStart := segment.Start
	if video.PublishedAt != nil {
		if video.PublishedAt.After(segment.End) {
			return nil, nil, nil
		}
		if video.PublishedAt.After(effectiveStart) {
			effectiveStart = *video.PublishedAt
		}
	}

	var (
		collected []domain.MetricRow
		columns   []string
	)

	startIndex := int64(1)
	for {
		// O cancelamento é observado na fronteira entre páginas, deixando o
		// cache válido no limite da última página totalmente gravada.
		if err := ctx.Err(); err != nil {
			return collected, columns, err
		}
		if err := s.pageLimiter.Wait(ctx); err != nil {
			return collected, columns, err
		}

		page, err := s.queryWithRetry(ctx, domain.ReportQuery{
			VideoID:    video.ID,
			StartDate:  effectiveStart,
			EndDate:    segment.End,
			StartIndex: startIndex,
			MaxResults: s.pageSize,
		})
		if err != nil {
			return collected, columns, err
		}

		if columns == nil && len(page.Columns) > 1 {
			columns = page.Columns[1:] // descarta a dimensão de dia
		}

		rows := tagRows(video.ID, page.Rows)
		if len(rows) > 0 {
			if err := s.flush(columns, rows); err != nil {
				return collected, columns, err
			}
			collected = append(collected, rows...)
		}

		// Página curta encerra a paginação deste vídeo no segmento
		if int64(len(page.Rows)) < s.pageSize {
			return collected, columns, nil
		}

		startIndex += s.pageSize
	}
}

// queryWithRetry executa uma consulta paginada aplicando o classificador a
// cada falha: espera e repete, desiste (errGivenUp) ou propaga o erro fatal
// para este ponto de chamada. Cada nova tentativa e cada desistência é
// registrada com vídeo, tentativa, motivo e atraso.
func (s *Service) queryWithRetry(ctx context.Context, query domain.ReportQuery) (*domain.ReportPage, error) {
	for attempt := 1; ; attempt++ {
		page, err := s.provider.QueryDailyMetrics(ctx, query)
		if err == nil {
			return page, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		outcome := Classify(err, attempt)
		fields := logrus.Fields{
			"video_id":    query.VideoID,
			"start_index": query.StartIndex,
			"attempt":     attempt,
			"reason":      outcome.Reason,
		}

		switch outcome.Kind {
		case OutcomeRetry:
			logrus.WithFields(fields).
				WithField("delay", outcome.Delay.String()).
				Warn("Falha recuperável do provedor. Aguardando nova tentativa")
			if err := s.sleep(ctx, outcome.Delay); err != nil {
				return nil, err
			}
		case OutcomeGiveUp:
			logrus.WithFields(fields).Warn("Tentativas esgotadas. Desistindo deste vídeo no segmento")
			return nil, errGivenUp
		default:
			logrus.WithFields(fields).WithError(err).Error("Erro não recuperável do provedor para este vídeo")
			return nil, err
		}
	}
}

// flush envia o lote ao cache primário e, em seguida, aos espelhos
// opcionais. O espelho é melhor esforço: a fonte de verdade é o cache.
func (s *Service) flush(columns []string, rows []domain.MetricRow) error {
	if err := s.cache.Append(columns, rows); err != nil {
		return fmt.Errorf("%w: %v", errSinkWrite, err)
	}

	for _, mirror := range s.mirrors {
		if err := mirror.Append(columns, rows); err != nil {
			logrus.WithError(err).Warn("Falha ao espelhar lote no repositório")
		}
	}

	return nil
}

// tagRows etiqueta cada linha bruta com o id do vídeo, convertendo a
// primeira coluna (dimensão de dia) em data.
func tagRows(videoID string, raw [][]string) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, len(raw))

	for _, values := range raw {
		if len(values) == 0 {
			continue
		}

		date, err := time.Parse(time.DateOnly, values[0])
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"video_id": videoID,
				"value":    values[0],
			}).Warn("Linha com data inválida descartada")
			continue
		}

		rows = append(rows, domain.MetricRow{VideoID: videoID, Date: date, Values: values[1:]})
	}

	return rows
}

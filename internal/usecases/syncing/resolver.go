package syncing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	"github.com/vfg2006/yt-analytics-sync/pkg/utils"
)

// RangeOptions agrupa os parâmetros de período informados pelo operador.
// Start e End devem ser informados juntos, ou nenhum dos dois.
type RangeOptions struct {
	Start       *time.Time
	End         *time.Time
	FullHistory bool
}

// ResolveDateRange calcula o período [start, end] solicitado.
//
// now é injetado para manter os testes determinísticos. earliestPublish é a
// data do primeiro vídeo do canal, quando conhecida pelo catálogo.
//
// Limites explícitos são devolvidos exatamente como informados, sem validar
// start <= end: um intervalo invertido produz zero segmentos no planejador e
// a execução termina sem trabalho.
func ResolveDateRange(opts RangeOptions, earliestPublish *time.Time, now time.Time) (domain.DateRange, error) {
	if opts.FullHistory && (opts.Start != nil || opts.End != nil) {
		return domain.DateRange{}, errors.Wrap(
			domain.ErrInvalidArguments,
			"--full-history não pode ser combinado com --start-date/--end-date",
		)
	}

	if (opts.Start != nil) != (opts.End != nil) {
		return domain.DateRange{}, errors.Wrap(
			domain.ErrInvalidArguments,
			"informe --start-date e --end-date juntos, ou nenhum dos dois",
		)
	}

	yesterday := utils.Yesterday(now)

	if opts.FullHistory {
		if earliestPublish == nil {
			return domain.DateRange{}, domain.ErrMissingCatalogData
		}
		return domain.DateRange{Start: *earliestPublish, End: yesterday}, nil
	}

	if opts.Start != nil {
		return domain.DateRange{Start: *opts.Start, End: *opts.End}, nil
	}

	// Janela padrão: 28 dias terminando ontem
	return domain.DateRange{Start: yesterday.AddDate(0, 0, -27), End: yesterday}, nil
}

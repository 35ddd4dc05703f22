package syncing

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ResumeStart propõe um início posterior com base no que já foi persistido.
//
// A proposta é max(data em cache) + 1 dia, adotada somente quando
// estritamente posterior ao início padrão: a retomada nunca antecipa o
// período solicitado. Cache ausente, ilegível ou sem datas válidas mantém
// o início padrão.
//
// O checkpoint tem granularidade de data: assume que, se a última data foi
// gravada, todas as datas anteriores daquela execução também foram. Escritas
// parciais dentro de um mesmo dia não são detectadas aqui; o espelho em
// banco com upsert por (video_id, date) cobre esse caso quando habilitado.
func ResumeStart(checkpoint Checkpointer, defaultStart time.Time) time.Time {
	maxDate, err := checkpoint.MaxCachedDate()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao ler o checkpoint do cache. Mantendo o início padrão")
		return defaultStart
	}
	if maxDate == nil {
		return defaultStart
	}

	resume := maxDate.AddDate(0, 0, 1)
	if resume.After(defaultStart) {
		return resume
	}

	return defaultStart
}

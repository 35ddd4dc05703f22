package syncing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

const (
	// MaxAttempts é o total de tentativas por página, incluindo a primeira.
	MaxAttempts = 5

	maxBackoff = 30 * time.Second
)

// rateLimitMarkers são os indicadores de cota/limite de taxa que a API
// devolve no corpo de erros 403/429 recuperáveis.
var rateLimitMarkers = []string{"rateLimitExceeded", "quotaExceeded"}

// OutcomeKind é a decisão do classificador para uma chamada que falhou.
type OutcomeKind int

const (
	// OutcomeRetry: aguardar Delay e tentar novamente.
	OutcomeRetry OutcomeKind = iota
	// OutcomeGiveUp: tentativas esgotadas; o chamador trata como "nenhum
	// dado obtido para esta página" e segue adiante.
	OutcomeGiveUp
	// OutcomeFatal: erro não recuperável para este ponto de chamada; encerra
	// a paginação do vídeo corrente sem derrubar a execução.
	OutcomeFatal
)

// Outcome carrega a decisão e o contexto para os logs de progresso.
type Outcome struct {
	Kind   OutcomeKind
	Delay  time.Duration
	Reason string
}

// Classify aplica a tabela de decisão de novas tentativas a um erro do
// provedor na tentativa attempt (base 1):
//
//   - status 5xx: recuperável (falha transitória do servidor)
//   - status 403/429 com marcador de cota no corpo: recuperável (backpressure)
//   - qualquer outro status, ou falha de transporte sem status: fatal para
//     este ponto de chamada
//
// Todos os pontos de chamada interpretam os três desfechos da mesma forma.
func Classify(err error, attempt int) Outcome {
	var reqErr *domain.RequestError

	retryable := false
	reason := "falha de transporte"

	if errors.As(err, &reqErr) {
		reason = fmt.Sprintf("HTTP %d", reqErr.StatusCode)
		switch {
		case reqErr.StatusCode >= 500 && reqErr.StatusCode <= 599:
			retryable = true
		case (reqErr.StatusCode == 403 || reqErr.StatusCode == 429) && hasRateLimitMarker(reqErr.Body):
			retryable = true
			reason = "rate limit"
		}
	}

	if !retryable {
		return Outcome{Kind: OutcomeFatal, Reason: reason}
	}

	if attempt >= MaxAttempts {
		return Outcome{Kind: OutcomeGiveUp, Reason: reason}
	}

	return Outcome{Kind: OutcomeRetry, Delay: backoffDelay(attempt), Reason: reason}
}

// backoffDelay calcula o atraso antes da tentativa attempt+1:
// min(2^(attempt-1) segundos, 30 segundos).
func backoffDelay(attempt int) time.Duration {
	delay := time.Duration(1<<uint(attempt-1)) * time.Second
	if delay > maxBackoff {
		return maxBackoff
	}
	return delay
}

func hasRateLimitMarker(body string) bool {
	for _, marker := range rateLimitMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

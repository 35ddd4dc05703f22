package syncing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

func requestError(status int, body string) error {
	return &domain.RequestError{
		StatusCode: status,
		Body:       body,
		Err:        errors.New("resposta de erro do provedor"),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		attempt  int
		wantKind OutcomeKind
		wantWait time.Duration
	}{
		{
			name:     "Erro 5xx na primeira tentativa - repetir após 1s",
			err:      requestError(503, "backend error"),
			attempt:  1,
			wantKind: OutcomeRetry,
			wantWait: 1 * time.Second,
		},
		{
			name:     "Erro 5xx na segunda tentativa - repetir após 2s",
			err:      requestError(500, "internal error"),
			attempt:  2,
			wantKind: OutcomeRetry,
			wantWait: 2 * time.Second,
		},
		{
			name:     "Erro 5xx na quarta tentativa - repetir após 8s",
			err:      requestError(502, "bad gateway"),
			attempt:  4,
			wantKind: OutcomeRetry,
			wantWait: 8 * time.Second,
		},
		{
			name:     "Erro 5xx na quinta tentativa - desistir",
			err:      requestError(503, "backend error"),
			attempt:  5,
			wantKind: OutcomeGiveUp,
		},
		{
			name:     "403 com quotaExceeded no corpo - recuperável",
			err:      requestError(403, `{"error": {"errors": [{"reason": "quotaExceeded"}]}}`),
			attempt:  1,
			wantKind: OutcomeRetry,
			wantWait: 1 * time.Second,
		},
		{
			name:     "429 com rateLimitExceeded no corpo - recuperável",
			err:      requestError(429, `{"error": {"errors": [{"reason": "rateLimitExceeded"}]}}`),
			attempt:  3,
			wantKind: OutcomeRetry,
			wantWait: 4 * time.Second,
		},
		{
			name:     "403 sem marcador de cota - fatal (permissão real)",
			err:      requestError(403, `{"error": {"errors": [{"reason": "forbidden"}]}}`),
			attempt:  1,
			wantKind: OutcomeFatal,
		},
		{
			name:     "400 - fatal mesmo na primeira tentativa",
			err:      requestError(400, "badRequest"),
			attempt:  1,
			wantKind: OutcomeFatal,
		},
		{
			name:     "Falha de transporte sem status - fatal",
			err:      errors.New("connection reset by peer"),
			attempt:  1,
			wantKind: OutcomeFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, tt.attempt)

			assert.Equal(t, tt.wantKind, got.Kind)
			if tt.wantKind == OutcomeRetry {
				assert.Equal(t, tt.wantWait, got.Delay)
			}
		})
	}
}

func TestClassify_ErroEncadeado(t *testing.T) {
	// O classificador deve enxergar o RequestError mesmo envolto por contexto
	wrapped := errors.Wrap(requestError(503, "backend error"), "consulta de métricas")

	got := Classify(wrapped, 1)

	assert.Equal(t, OutcomeRetry, got.Kind)
}

func TestBackoffDelay_Teto(t *testing.T) {
	// A progressão dobra a cada tentativa mas nunca passa de 30s
	assert.Equal(t, 1*time.Second, backoffDelay(1))
	assert.Equal(t, 8*time.Second, backoffDelay(4))
	assert.Equal(t, 16*time.Second, backoffDelay(5))
	assert.Equal(t, 30*time.Second, backoffDelay(6))
	assert.Equal(t, 30*time.Second, backoffDelay(10))
}

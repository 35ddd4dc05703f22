package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

// AnalyticsProvider é o provedor paginado de métricas diárias (YouTube Analytics).
type AnalyticsProvider interface {
	// QueryDailyMetrics executa uma consulta paginada de métricas diárias
	// para um único vídeo dentro de um período.
	QueryDailyMetrics(ctx context.Context, query domain.ReportQuery) (*domain.ReportPage, error)
}

// VideoCatalog fornece o catálogo ordenado de vídeos do canal autenticado.
type VideoCatalog interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)
}

// RowSink recebe um lote de linhas imediatamente após cada página bem-sucedida.
// Cada chamada é um append independente e autocontido.
type RowSink interface {
	Append(columns []string, rows []domain.MetricRow) error
}

// Checkpointer expõe a maior data já persistida no cache, usada para derivar
// o ponto de retomada de execuções anteriores.
type Checkpointer interface {
	// MaxCachedDate retorna nil (sem erro) quando o cache está ausente,
	// ilegível ou não contém datas válidas.
	MaxCachedDate() (*time.Time, error)
}

// Cache é o destino durável primário das linhas sincronizadas.
type Cache interface {
	RowSink
	Checkpointer
}

// Syncer é a interface consumida pelo agendador e pela API de status.
type Syncer interface {
	Sync(ctx context.Context, opts RangeOptions) (*domain.SyncReport, error)
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/yt-analytics-sync/infrastructure/database/postgres"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

// MetricRowRepository é o espelho opcional do cache em Postgres. O upsert
// por (video_id, date) absorve reprocessamentos sem duplicar linhas, ao
// contrário do CSV append-only.
type MetricRowRepository interface {
	Append(columns []string, rows []domain.MetricRow) error
	DeleteOlderThan(days int) (int64, error)
}

type metricRowRepository struct {
	conn postgres.Conn
}

func NewMetricRowRepository(conn postgres.Conn) MetricRowRepository {
	return &metricRowRepository{
		conn: conn,
	}
}

// Append insere um lote de linhas em uma única transação, atualizando as
// métricas quando o par (video_id, date) já existe. O lote é atômico: ou o
// espelho recebe a página inteira, ou nada.
func (r *metricRowRepository) Append(columns []string, rows []domain.MetricRow) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, row := range rows {
			metricsJSON, err := json.Marshal(zipMetrics(columns, row.Values))
			if err != nil {
				return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
			}

			query := squirrel.StatementBuilder.
				Insert("video_metric_rows").
				Columns("video_id", "date", "metrics").
				Values(
					row.VideoID,
					row.Date.Format("2006-01-02"),
					metricsJSON,
				).
				Suffix(`
					ON CONFLICT (video_id, date) DO UPDATE SET
						metrics = EXCLUDED.metrics,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err = tx.Exec(sqlQuery, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func (r *metricRowRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("video_metric_rows").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// zipMetrics combina cabeçalhos e valores na ordem reportada pelo provedor.
// Valores excedentes sem cabeçalho recebem a posição como chave.
func zipMetrics(columns []string, values []string) map[string]string {
	metrics := make(map[string]string, len(values))

	for i, value := range values {
		if i < len(columns) {
			metrics[columns[i]] = value
			continue
		}
		metrics[fmt.Sprintf("column_%d", i)] = value
	}

	return metrics
}

package domain

import (
	"fmt"
	"time"
)

// DateRange representa um intervalo fechado de datas [Start, End].
// É um objeto de valor: uma vez construído, nunca é mutado; quando o
// período muda, derivamos um novo intervalo.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s → %s", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
}

// Video representa um vídeo do catálogo do canal autenticado.
// PublishedAt pode ser nulo quando o catálogo não informa a data de publicação.
type Video struct {
	ID          string
	Title       string
	PublishedAt *time.Time
}

// MetricRow é um dia de métricas de um vídeo, identificado unicamente
// por (VideoID, Date). Values mantém os valores brutos exatamente na
// ordem reportada pelo provedor.
type MetricRow struct {
	VideoID string
	Date    time.Time
	Values  []string
}

// ReportQuery descreve uma consulta paginada ao provedor de métricas.
type ReportQuery struct {
	VideoID    string
	StartDate  time.Time
	EndDate    time.Time
	StartIndex int64
	MaxResults int64
}

// ReportPage é uma página de resultados do provedor. A primeira coluna é
// sempre a dimensão de dia; as demais são as métricas solicitadas.
type ReportPage struct {
	Columns []string
	Rows    [][]string
}

// SyncReport é o resultado combinado de uma execução completa de sincronização.
// As linhas já foram persistidas incrementalmente no cache; aqui elas são
// acumuladas apenas para o consumidor final (exportação).
type SyncReport struct {
	Range   DateRange
	Columns []string
	Rows    []MetricRow
	Videos  []Video

	// Skipped conta os pares (segmento, vídeo) abandonados após esgotar as
	// tentativas ou após um erro não recuperável do provedor.
	Skipped int
}

package ytclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
	youtubeanalytics "google.golang.org/api/youtubeanalytics/v2"
)

// Relatório diário fixo: uma linha por dia, por vídeo, sempre com as mesmas
// métricas e na mesma ordem.
const (
	reportMetrics   = "views,estimatedMinutesWatched,estimatedRevenue"
	reportDimension = "day"
	reportIDs       = "channel==MINE"
)

type Client interface {
	QueryReport(ctx context.Context, query domain.ReportQuery) (*domain.ReportPage, error)
	ListChannelVideos(ctx context.Context) ([]domain.Video, error)
}

type YouTubeClient struct {
	analytics *youtubeanalytics.Service
	data      *youtube.Service
}

func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	tokenSource, err := NewTokenManager(cfg).TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	analyticsService, err := youtubeanalytics.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	dataService, err := youtube.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &YouTubeClient{
		analytics: analyticsService,
		data:      dataService,
	}, nil
}

// QueryReport busca uma página do relatório diário de um vídeo. A primeira
// coluna da resposta é a dimensão de dia; os valores numéricos são
// convertidos para texto sem perda de precisão.
func (c *YouTubeClient) QueryReport(ctx context.Context, query domain.ReportQuery) (*domain.ReportPage, error) {
	resp, err := c.analytics.Reports.Query().
		Ids(reportIDs).
		StartDate(query.StartDate.Format(time.DateOnly)).
		EndDate(query.EndDate.Format(time.DateOnly)).
		Metrics(reportMetrics).
		Dimensions(reportDimension).
		Filters("video==" + query.VideoID).
		MaxResults(query.MaxResults).
		StartIndex(query.StartIndex).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapRequestError(err)
	}

	columns := make([]string, 0, len(resp.ColumnHeaders))
	for _, header := range resp.ColumnHeaders {
		columns = append(columns, header.Name)
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, raw := range resp.Rows {
		row := make([]string, 0, len(raw))
		for _, value := range raw {
			row = append(row, formatCell(value))
		}
		rows = append(rows, row)
	}

	return &domain.ReportPage{Columns: columns, Rows: rows}, nil
}

// formatCell converte uma célula do relatório para texto. A API devolve
// números como float64; FormatFloat com precisão -1 preserva o valor exato.
func formatCell(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// wrapRequestError traduz erros da API do Google para o erro de requisição
// do domínio, preservando status e corpo para o classificador de novas
// tentativas. Falhas de transporte passam inalteradas.
func wrapRequestError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	body := apiErr.Body
	for _, item := range apiErr.Errors {
		if item.Reason != "" && !strings.Contains(body, item.Reason) {
			body += " " + item.Reason
		}
	}

	return &domain.RequestError{
		StatusCode: apiErr.Code,
		Body:       body,
		Err:        err,
	}
}

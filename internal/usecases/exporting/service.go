package exporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	"github.com/vfg2006/yt-analytics-sync/pkg/utils"
)

// titleUnavailable substitui o título de vídeos que saíram do catálogo entre
// a coleta e a exportação.
const titleUnavailable = "<title unavailable>"

// Colunas do provedor consumidas pela exportação.
const (
	columnViews   = "views"
	columnMinutes = "estimatedMinutesWatched"
	columnRevenue = "estimatedRevenue"
)

var exportHeader = []string{
	"date",
	"title",
	"video",
	"views",
	"watch_time_minutes",
	"watch_time_hours",
	"estimated_revenue_usd",
}

// Service materializa o relatório final de uma execução: colunas renomeadas
// para o consumidor, horas assistidas derivadas dos minutos e títulos
// juntados a partir do catálogo.
//
// O arquivo de saída é independente do cache: reexportar nunca sobrescreve o
// histórico acumulado.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// DefaultOutputPath nomeia a saída com o período sincronizado.
func DefaultOutputPath(dir string, dateRange domain.DateRange) string {
	return filepath.Join(dir, fmt.Sprintf(
		"daily_analytics_%s_to_%s.csv",
		dateRange.Start.Format(time.DateOnly),
		dateRange.End.Format(time.DateOnly),
	))
}

// WriteCSV grava o relatório em path. Execuções sem linhas novas não criam
// arquivo.
func (s *Service) WriteCSV(report *domain.SyncReport, path string) error {
	if report == nil || len(report.Rows) == 0 {
		logrus.Info("Nenhuma linha nova para exportar")
		return nil
	}

	titles := make(map[string]string, len(report.Videos))
	for _, video := range report.Videos {
		titles[video.ID] = video.Title
	}

	views := columnIndex(report.Columns, columnViews)
	minutes := columnIndex(report.Columns, columnMinutes)
	revenue := columnIndex(report.Columns, columnRevenue)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "criando o diretório de saída")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "criando o arquivo de saída")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(exportHeader); err != nil {
		return errors.Wrap(err, "gravando o cabeçalho de saída")
	}

	for _, row := range report.Rows {
		title, ok := titles[row.VideoID]
		if !ok || title == "" {
			title = titleUnavailable
		}

		watchMinutes := valueAt(row.Values, minutes)

		record := []string{
			row.Date.Format(time.DateOnly),
			title,
			row.VideoID,
			valueAt(row.Values, views),
			watchMinutes,
			watchHours(watchMinutes),
			valueAt(row.Values, revenue),
		}

		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "gravando linha de saída")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "descarregando a saída em disco")
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(report.Rows),
	}).Info("Relatório exportado")

	return nil
}

// watchHours deriva horas assistidas dos minutos, com duas casas decimais.
func watchHours(watchMinutes string) string {
	minutes, err := strconv.ParseFloat(watchMinutes, 64)
	if err != nil {
		return ""
	}

	return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(minutes/60), 'f', 2, 64)
}

func columnIndex(columns []string, name string) int {
	for i, column := range columns {
		if column == name {
			return i
		}
	}
	return -1
}

func valueAt(values []string, index int) string {
	if index < 0 || index >= len(values) {
		return ""
	}
	return values[index]
}

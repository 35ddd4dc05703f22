package exporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestService_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relatorio.csv")

	report := &domain.SyncReport{
		Columns: []string{"views", "estimatedMinutesWatched", "estimatedRevenue"},
		Videos: []domain.Video{
			{ID: "v1", Title: "Primeiro vídeo"},
		},
		Rows: []domain.MetricRow{
			{VideoID: "v1", Date: day(2023, 1, 1), Values: []string{"100", "40", "1.25"}},
			// Vídeo fora do catálogo recebe o título de fallback
			{VideoID: "v9", Date: day(2023, 1, 2), Values: []string{"50", "90", "0.5"}},
		},
	}

	err := NewService().WriteCSV(report, path)
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t,
		"date,title,video,views,watch_time_minutes,watch_time_hours,estimated_revenue_usd\n"+
			"2023-01-01,Primeiro vídeo,v1,100,40,0.67,1.25\n"+
			"2023-01-02,<title unavailable>,v9,50,90,1.50,0.5\n",
		string(content),
	)
}

func TestService_WriteCSV_SemLinhasNaoCriaArquivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relatorio.csv")

	err := NewService().WriteCSV(&domain.SyncReport{}, path)
	assert.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestService_WriteCSV_MinutosInvalidosDeixamHorasVazias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relatorio.csv")

	report := &domain.SyncReport{
		Columns: []string{"views", "estimatedMinutesWatched", "estimatedRevenue"},
		Rows: []domain.MetricRow{
			{VideoID: "v1", Date: day(2023, 1, 1), Values: []string{"100", "n/a", "1.25"}},
		},
	}

	err := NewService().WriteCSV(report, path)
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "2023-01-01,<title unavailable>,v1,100,n/a,,1.25\n")
}

func TestDefaultOutputPath(t *testing.T) {
	got := DefaultOutputPath("data", domain.DateRange{
		Start: day(2023, 1, 1),
		End:   day(2023, 12, 31),
	})

	assert.Equal(t, filepath.Join("data", "daily_analytics_2023-01-01_to_2023-12-31.csv"), got)
}

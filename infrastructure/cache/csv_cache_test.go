package cache

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

func TestCSVCache_AppendEscreveCabecalhoUmaVez(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.csv")
	csvCache := NewCSVCache(path)

	columns := []string{"views", "estimatedMinutesWatched"}

	err := csvCache.Append(columns, []domain.MetricRow{
		{VideoID: "v1", Date: day(2023, 1, 1), Values: []string{"10", "5"}},
	})
	assert.NoError(t, err)

	// Segundo append não pode repetir o cabeçalho
	err = csvCache.Append(columns, []domain.MetricRow{
		{VideoID: "v1", Date: day(2023, 1, 2), Values: []string{"20", "6"}},
	})
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t,
		"video,date,views,estimatedMinutesWatched\n"+
			"v1,2023-01-01,10,5\n"+
			"v1,2023-01-02,20,6\n",
		string(content),
	)
}

func TestCSVCache_AppendLoteVazioNaoCriaArquivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.csv")
	csvCache := NewCSVCache(path)

	err := csvCache.Append([]string{"views"}, nil)
	assert.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCSVCache_MaxCachedDate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *time.Time
	}{
		{
			name: "Maior data do arquivo, independente da ordem",
			content: "video,date,views\n" +
				"v1,2023-03-10,10\n" +
				"v2,2023-03-15,20\n" +
				"v1,2023-03-12,30\n",
			want: func() *time.Time { d := day(2023, 3, 15); return &d }(),
		},
		{
			name:    "Apenas cabeçalho - sem checkpoint",
			content: "video,date,views\n",
			want:    nil,
		},
		{
			name: "Datas inválidas ignoradas",
			content: "video,date,views\n" +
				"v1,corrompida,10\n" +
				"v1,2023-03-12,30\n",
			want: func() *time.Time { d := day(2023, 3, 12); return &d }(),
		},
		{
			name:    "Sem coluna de data - sem checkpoint",
			content: "video,views\nv1,10\n",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cache.csv")
			assert.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := NewCSVCache(path).MaxCachedDate()

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVCache_MaxCachedDate_ArquivoAusente(t *testing.T) {
	csvCache := NewCSVCache(filepath.Join(t.TempDir(), "inexistente.csv"))

	got, err := csvCache.MaxCachedDate()

	assert.NoError(t, err)
	assert.Nil(t, got)
}

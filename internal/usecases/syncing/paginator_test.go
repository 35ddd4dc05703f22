package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	"github.com/vfg2006/yt-analytics-sync/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

// newTestService monta um Service com relógio e espera determinísticos.
// delays acumula os atrasos que o backoff pediria, sem dormir de verdade.
func newTestService(provider AnalyticsProvider, catalog VideoCatalog, cache Cache, pageSize int64, delays *[]time.Duration) *Service {
	return &Service{
		provider:         provider,
		catalog:          catalog,
		cache:            cache,
		pageSize:         pageSize,
		monthsPerSegment: DefaultMonthsPerSegment,
		pageLimiter:      rate.NewLimiter(rate.Inf, 1),
		sleep: func(_ context.Context, d time.Duration) error {
			if delays != nil {
				*delays = append(*delays, d)
			}
			return nil
		},
		now: func() time.Time {
			return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestSyncVideoSegment_PaginacaoComFlushPorPagina(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 4, 30)}
	video := domain.Video{ID: "v1", Title: "Primeiro vídeo"}
	columns := []string{"day", "views", "estimatedMinutesWatched"}

	// Primeira página cheia (2 linhas = pageSize)
	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), domain.ReportQuery{
			VideoID:    "v1",
			StartDate:  segment.Start,
			EndDate:    segment.End,
			StartIndex: 1,
			MaxResults: 2,
		}).
		Return(&domain.ReportPage{
			Columns: columns,
			Rows: [][]string{
				{"2023-01-01", "10", "5"},
				{"2023-01-02", "20", "6"},
			},
		}, nil)

	// Segunda página curta encerra a paginação
	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), domain.ReportQuery{
			VideoID:    "v1",
			StartDate:  segment.Start,
			EndDate:    segment.End,
			StartIndex: 3,
			MaxResults: 2,
		}).
		Return(&domain.ReportPage{
			Columns: columns,
			Rows: [][]string{
				{"2023-01-03", "30", "7"},
			},
		}, nil)

	// Cada página é gravada no cache assim que chega
	metricColumns := []string{"views", "estimatedMinutesWatched"}
	mockCache.EXPECT().Append(metricColumns, []domain.MetricRow{
		{VideoID: "v1", Date: day(2023, 1, 1), Values: []string{"10", "5"}},
		{VideoID: "v1", Date: day(2023, 1, 2), Values: []string{"20", "6"}},
	}).Return(nil)
	mockCache.EXPECT().Append(metricColumns, []domain.MetricRow{
		{VideoID: "v1", Date: day(2023, 1, 3), Values: []string{"30", "7"}},
	}).Return(nil)

	service := newTestService(mockProvider, nil, mockCache, 2, nil)

	rows, gotColumns, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.NoError(t, err)
	assert.Equal(t, metricColumns, gotColumns)
	assert.Len(t, rows, 3)
}

func TestSyncVideoSegment_InicioElevadoADataDePublicacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	video := domain.Video{ID: "v1", PublishedAt: datePtr(2023, 1, 5)}

	// Não há dados antes da publicação: a consulta começa em 05/01
	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.ReportQuery) (*domain.ReportPage, error) {
			assert.Equal(t, day(2023, 1, 5), query.StartDate)
			assert.Equal(t, segment.End, query.EndDate)
			return &domain.ReportPage{Columns: []string{"day", "views"}}, nil
		})

	service := newTestService(mockProvider, nil, mockCache, 200, nil)

	rows, _, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSyncVideoSegment_VideoPublicadoDepoisDoSegmento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao provedor nem ao cache é esperada
	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	video := domain.Video{ID: "v1", PublishedAt: datePtr(2023, 2, 10)}

	service := newTestService(mockProvider, nil, mockCache, 200, nil)

	rows, columns, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.NoError(t, err)
	assert.Nil(t, rows)
	assert.Nil(t, columns)
}

func TestSyncVideoSegment_LinhaComDataInvalidaDescartada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	video := domain.Video{ID: "v1"}

	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), gomock.Any()).
		Return(&domain.ReportPage{
			Columns: []string{"day", "views"},
			Rows: [][]string{
				{"não-é-data", "10"},
				{"2023-01-02", "20"},
			},
		}, nil)

	mockCache.EXPECT().Append([]string{"views"}, []domain.MetricRow{
		{VideoID: "v1", Date: day(2023, 1, 2), Values: []string{"20"}},
	}).Return(nil)

	service := newTestService(mockProvider, nil, mockCache, 200, nil)

	rows, _, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSyncVideoSegment_DesisteAposEsgotarTentativas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	video := domain.Video{ID: "v1"}

	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), gomock.Any()).
		Return(nil, requestError(503, "backend error")).
		Times(MaxAttempts)

	var delays []time.Duration
	service := newTestService(mockProvider, nil, mockCache, 200, &delays)

	rows, _, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.ErrorIs(t, err, errGivenUp)
	assert.Empty(t, rows)

	// Progressão exponencial entre as 5 tentativas: 1s, 2s, 4s, 8s
	assert.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
	}, delays)
}

func TestSyncVideoSegment_ErroFatalNaoRepete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	video := domain.Video{ID: "v1"}

	fatal := requestError(400, "badRequest")
	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), gomock.Any()).
		Return(nil, fatal)

	var delays []time.Duration
	service := newTestService(mockProvider, nil, mockCache, 200, &delays)

	_, _, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.ErrorIs(t, err, fatal)
	assert.Empty(t, delays)
}

func TestSyncVideoSegment_FalhaDeEscritaNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	video := domain.Video{ID: "v1"}

	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), gomock.Any()).
		Return(&domain.ReportPage{
			Columns: []string{"day", "views"},
			Rows:    [][]string{{"2023-01-02", "20"}},
		}, nil)

	mockCache.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(errors.New("disco cheio"))

	service := newTestService(mockProvider, nil, mockCache, 200, nil)

	_, _, err := service.syncVideoSegment(context.Background(), video, segment)

	assert.ErrorIs(t, err, errSinkWrite)
}

func TestSyncVideoSegment_CancelamentoEntrePaginas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAnalyticsProvider(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	segment := domain.DateRange{Start: day(2023, 1, 1), End: day(2023, 4, 30)}
	video := domain.Video{ID: "v1"}

	ctx, cancel := context.WithCancel(context.Background())

	// Página cheia pede continuação, mas o contexto é cancelado após o flush
	mockProvider.EXPECT().
		QueryDailyMetrics(gomock.Any(), gomock.Any()).
		Return(&domain.ReportPage{
			Columns: []string{"day", "views"},
			Rows:    [][]string{{"2023-01-01", "10"}},
		}, nil)

	mockCache.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func([]string, []domain.MetricRow) error {
			cancel()
			return nil
		})

	service := newTestService(mockProvider, nil, mockCache, 1, nil)

	rows, _, err := service.syncVideoSegment(ctx, video, segment)

	assert.ErrorIs(t, err, context.Canceled)
	// A página já gravada é preservada no retorno
	assert.Len(t, rows, 1)
}

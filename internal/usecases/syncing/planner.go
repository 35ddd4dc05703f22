package syncing

import (
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	"github.com/vfg2006/yt-analytics-sync/pkg/utils"
)

// DefaultMonthsPerSegment limita cada consulta a 4 meses de calendário para
// ficar abaixo do teto de linhas por consulta do provedor.
const DefaultMonthsPerSegment = 4

// ChunkDateRange divide um período em segmentos contíguos de no máximo
// months meses de calendário. Os segmentos não se sobrepõem e a união deles
// é exatamente o período de entrada; o último segmento pode ser mais curto.
func ChunkDateRange(dateRange domain.DateRange, months int) []domain.DateRange {
	if months <= 0 {
		months = DefaultMonthsPerSegment
	}

	segments := make([]domain.DateRange, 0)
	current := dateRange.Start

	for !current.After(dateRange.End) {
		nextStart := utils.AddMonths(current, months)

		segmentEnd := nextStart.AddDate(0, 0, -1)
		if segmentEnd.After(dateRange.End) {
			segmentEnd = dateRange.End
		}

		segments = append(segments, domain.DateRange{Start: current, End: segmentEnd})
		current = segmentEnd.AddDate(0, 0, 1)
	}

	return segments
}

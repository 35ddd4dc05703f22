package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYesterday(t *testing.T) {
	now := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)

	got := Yesterday(now)

	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		base   time.Time
		months int
		want   time.Time
	}{
		{
			name:   "Avanço simples dentro do ano",
			base:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			months: 4,
			want:   time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Virada de ano",
			base:   time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Dia limitado ao fim do mês de destino",
			base:   time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Fevereiro em ano bissexto",
			base:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.base, tt.months))
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-07-02")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 7, 2, 0, 0, 0, 0, time.UTC), *got)

	_, err = ParseDate("02/07/2023")
	assert.Error(t, err)
}

package cache

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yt-analytics-sync/internal/domain"
)

// Colunas fixas que antecedem as métricas em cada linha do cache.
var cacheKeyColumns = []string{"video", "date"}

// CSVCache é o cache incremental em disco: um CSV append-only onde cada
// linha é um par (vídeo, data) com os valores brutos das métricas. O
// cabeçalho é escrito uma única vez, na criação do arquivo.
//
// O arquivo nunca é reescrito nem reordenado: execuções interrompidas
// deixam o cache válido até a última página gravada, e a próxima execução
// retoma a partir da maior data presente.
type CSVCache struct {
	path string

	mu sync.Mutex
}

func NewCSVCache(path string) *CSVCache {
	return &CSVCache{path: path}
}

// Append grava um lote de linhas no fim do arquivo, criando-o (com
// cabeçalho) na primeira escrita. columns são as colunas de métricas, na
// ordem reportada pelo provedor.
func (c *CSVCache) Append(columns []string, rows []domain.MetricRow) error {
	if len(rows) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return errors.Wrap(err, "criando o diretório do cache")
	}

	writeHeader := false
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		writeHeader = true
	}

	file, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "abrindo o arquivo de cache")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if writeHeader {
		header := append(append([]string{}, cacheKeyColumns...), columns...)
		if err := writer.Write(header); err != nil {
			return errors.Wrap(err, "gravando o cabeçalho do cache")
		}
	}

	for _, row := range rows {
		record := make([]string, 0, len(cacheKeyColumns)+len(row.Values))
		record = append(record, row.VideoID, row.Date.Format(time.DateOnly))
		record = append(record, row.Values...)

		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "gravando linha no cache")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "descarregando o cache em disco")
	}

	return file.Sync()
}

// MaxCachedDate varre o arquivo e retorna a maior data presente na coluna
// "date". Cache ausente retorna nil sem erro; linhas malformadas ou com
// data inválida são ignoradas com aviso.
func (c *CSVCache) MaxCachedDate() (*time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	file, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "abrindo o arquivo de cache")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		// Arquivo vazio ou cabeçalho ilegível equivale a cache ausente
		return nil, nil
	}

	dateIndex := -1
	for i, column := range header {
		if column == "date" {
			dateIndex = i
			break
		}
	}
	if dateIndex < 0 {
		logrus.WithField("path", c.path).Warn("Cache sem coluna de data. Ignorando checkpoint")
		return nil, nil
	}

	var maxDate *time.Time

	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		if dateIndex >= len(record) {
			continue
		}

		date, err := time.Parse(time.DateOnly, record[dateIndex])
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.path,
				"value": record[dateIndex],
			}).Warn("Linha do cache com data inválida ignorada")
			continue
		}

		if maxDate == nil || date.After(*maxDate) {
			maxDate = &date
		}
	}

	return maxDate, nil
}

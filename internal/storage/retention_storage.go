package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pmurley/rugby-stats/internal/models"
)

const retentionFileName = "retention.csv"

// fixedColumns precede one <set>Retained column per set name
var fixedColumns = []string{"MatchID", "Squad", "Season", "Date"}

// RetentionStorage persists the latest retention table as CSV
type RetentionStorage struct {
	mu       sync.RWMutex
	filePath string
}

// NewRetentionStorage creates a retention storage instance under dataDir
func NewRetentionStorage(dataDir string) (*RetentionStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &RetentionStorage{
		filePath: filepath.Join(dataDir, retentionFileName),
	}, nil
}

// Path returns the CSV file location
func (rs *RetentionStorage) Path() string {
	return rs.filePath
}

// Save replaces the stored table. Undefined counts are written as blank cells.
func (rs *RetentionStorage) Save(records []models.RetentionRecord, setNames []string) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	headers := append([]string{}, fixedColumns...)
	for _, name := range setNames {
		headers = append(headers, columnName(name))
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, headers)
	for i := range records {
		r := &records[i]
		row := []string{r.MatchID, r.Squad, r.Season, r.Date.Format(models.DateLayout)}
		for _, name := range setNames {
			if n, ok := r.Retained(name); ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	// Write to a temp file first so a failed run never leaves half a table
	tmp := rs.filePath + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create retention file: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write retention records: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close retention file: %w", err)
	}

	if err := os.Rename(tmp, rs.filePath); err != nil {
		return fmt.Errorf("failed to replace retention file: %w", err)
	}

	return nil
}

// Load reads the stored table back along with the set names it was saved with
func (rs *RetentionStorage) Load() ([]models.RetentionRecord, []string, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	file, err := os.Open(rs.filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open retention file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read retention file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("retention file has no header")
	}

	header := records[0]
	if len(header) < len(fixedColumns) {
		return nil, nil, fmt.Errorf("retention file header too short")
	}
	var setNames []string
	for _, col := range header[len(fixedColumns):] {
		setNames = append(setNames, strings.TrimSuffix(col, "Retained"))
	}

	var out []models.RetentionRecord
	// Skip header row
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(header) {
			return nil, nil, fmt.Errorf("retention file row %d: expected %d columns, got %d", i+1, len(header), len(record))
		}

		date, err := time.Parse(models.DateLayout, record[3])
		if err != nil {
			return nil, nil, fmt.Errorf("retention file row %d: %w", i+1, err)
		}

		r := models.RetentionRecord{
			MatchID: record[0],
			Squad:   record[1],
			Season:  record[2],
			Date:    date,
			Counts:  make(map[string]int, len(setNames)),
		}

		for j, name := range setNames {
			cell := record[len(fixedColumns)+j]
			if cell == "" {
				r.Counts[name] = 0
				continue
			}
			n, err := strconv.Atoi(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("retention file row %d: %w", i+1, err)
			}
			r.Counts[name] = n
			r.HasPrevious = true
		}

		out = append(out, r)
	}

	return out, setNames, nil
}

// columnName turns "starters" into "startersRetained"
func columnName(setName string) string {
	return setName + "Retained"
}

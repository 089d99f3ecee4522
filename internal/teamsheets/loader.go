// Package teamsheets reads team sheet exports: one row per match with the
// lineup spread across shirt-numbered columns.
package teamsheets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pmurley/rugby-stats/internal/cache"
	"github.com/pmurley/rugby-stats/internal/models"
	"github.com/pmurley/rugby-stats/pkg/logger"
)

// RowError reports a team sheet row that could not be parsed
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Loader reads team sheet files, reusing parsed batches while a file is unchanged
type Loader struct {
	cache  *cache.Cache
	logger *logger.Logger
}

func NewLoader(c *cache.Cache, log *logger.Logger) *Loader {
	return &Loader{cache: c, logger: log}
}

// Load parses the team sheet at path
func (l *Loader) Load(path string) ([]models.Match, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat team sheet: %w", err)
	}

	key := cache.FileKey(path, info.ModTime(), info.Size())
	if matches, found := l.cache.GetMatches(key); found {
		l.logger.Debugf("Using cached team sheet %s (%d matches)", path, len(matches))
		return matches, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open team sheet: %w", err)
	}
	defer file.Close()

	matches, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	l.logger.Infof("Loaded %d matches from %s", len(matches), path)
	l.cache.SetMatches(key, matches)
	return matches, nil
}

// Parse reads a team sheet CSV. The first row holds the headers; Squad, Date
// and at least one shirt number column are required. Matches keep file order.
func Parse(r io.Reader) ([]models.Match, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	header := models.NewHeaderIndex(headerRow)
	for _, col := range []string{"Squad", "Date"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("missing %s column", col)
		}
	}
	if len(header.ShirtColumns()) == 0 {
		return nil, errors.New("no shirt number columns")
	}

	// Repeat fixtures against the same opposition get numbered IDs
	meetings := make(map[string]int)

	var matches []models.Match
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		row, err := models.ParseTeamSheetRow(record, header)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		if row == nil {
			continue
		}
		if row.Squad == "" {
			return nil, &RowError{Line: line, Err: errors.New("missing squad")}
		}

		id := row.GameID
		if id == "" {
			if row.Opposition == "" {
				return nil, &RowError{Line: line, Err: errors.New("missing opposition")}
			}
			meetingKey := row.Squad + "|" + row.Season + "|" + row.Opposition
			meetings[meetingKey]++
			id = row.Opposition
			if n := meetings[meetingKey]; n > 1 {
				id += strconv.Itoa(n)
			}
		}

		matches = append(matches, models.Match{
			ID:         id,
			Squad:      row.Squad,
			Season:     row.Season,
			Date:       row.Date,
			Opposition: row.Opposition,
			Sets:       row.PlayerSets(),
		})
	}

	return matches, nil
}

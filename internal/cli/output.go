package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pmurley/rugby-stats/internal/models"
	"github.com/pmurley/rugby-stats/internal/retention"
)

func writeRecords(w io.Writer, format string, records []models.RetentionRecord, setNames []string) error {
	if format == "json" {
		if records == nil {
			records = []models.RetentionRecord{}
		}
		return writeJSON(w, records)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SQUAD\tSEASON\tDATE\tMATCH\t%s\n", strings.Join(setNames, "\t"))
	for i := range records {
		r := &records[i]
		cells := make([]string, len(setNames))
		for j, name := range setNames {
			cells[j] = "-"
			if n, ok := r.Retained(name); ok {
				cells[j] = strconv.Itoa(n)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Squad, r.Season, r.Date.Format(models.DateLayout), r.MatchID, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

type summaryJSON struct {
	Squad    string              `json:"squad"`
	Season   string              `json:"season"`
	Matches  int                 `json:"matches"`
	Compared int                 `json:"compared"`
	Averages map[string]*float64 `json:"averages"`
}

func writeSummaries(w io.Writer, format string, summaries []retention.Summary, setNames []string) error {
	if format == "json" {
		out := make([]summaryJSON, 0, len(summaries))
		for i := range summaries {
			s := &summaries[i]
			averages := make(map[string]*float64, len(setNames))
			for _, name := range setNames {
				if avg, ok := s.Average(name); ok {
					averages[name] = &avg
				} else {
					averages[name] = nil
				}
			}
			out = append(out, summaryJSON{
				Squad:    s.Squad,
				Season:   s.Season,
				Matches:  s.Matches,
				Compared: s.Compared,
				Averages: averages,
			})
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SQUAD\tSEASON\tMATCHES\t%s\n", strings.Join(setNames, "\t"))
	for i := range summaries {
		s := &summaries[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Squad, s.Season, s.Matches, strings.Join(averageCells(s, setNames), "\t"))
	}
	return tw.Flush()
}

func averageCells(s *retention.Summary, setNames []string) []string {
	cells := make([]string, len(setNames))
	for i, name := range setNames {
		cells[i] = "-"
		if avg, ok := s.Average(name); ok {
			cells[i] = strconv.FormatFloat(avg, 'f', 2, 64)
		}
	}
	return cells
}

// summaryLine renders averages for a log line, e.g. "starters=11.50 forwards=5.25"
func summaryLine(s *retention.Summary, setNames []string) string {
	cells := averageCells(s, setNames)
	parts := make([]string, len(setNames))
	for i, name := range setNames {
		parts[i] = name + "=" + cells[i]
	}
	return fmt.Sprintf("%s over %d matches", strings.Join(parts, " "), s.Matches)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

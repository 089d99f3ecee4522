package retention

import (
	"sort"

	"github.com/pmurley/rugby-stats/internal/models"
)

// Summary is the average retention for one squad's season
type Summary struct {
	Squad    string
	Season   string
	Matches  int                // Records seen, including the first match
	Compared int                // Records that had a previous match
	Averages map[string]float64 // Only populated when Compared > 0
}

// Average returns the mean retained count for a set
func (s *Summary) Average(setName string) (float64, bool) {
	if s.Compared == 0 {
		return 0, false
	}
	avg, ok := s.Averages[setName]
	return avg, ok
}

// Summarize averages retained counts per squad and season. First matches
// count towards Matches but not towards the averages.
func Summarize(records []models.RetentionRecord, setNames []string) []Summary {
	totals := make(map[partitionKey]map[string]int)
	byKey := make(map[partitionKey]*Summary)
	var keys []partitionKey

	for i := range records {
		r := &records[i]
		key := partitionKey{Squad: r.Squad, Season: r.Season}

		s, ok := byKey[key]
		if !ok {
			s = &Summary{Squad: r.Squad, Season: r.Season, Averages: make(map[string]float64)}
			byKey[key] = s
			totals[key] = make(map[string]int)
			keys = append(keys, key)
		}

		s.Matches++
		if !r.HasPrevious {
			continue
		}
		s.Compared++
		for _, name := range setNames {
			if n, ok := r.Retained(name); ok {
				totals[key][name] += n
			}
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Squad != keys[j].Squad {
			return keys[i].Squad < keys[j].Squad
		}
		return keys[i].Season < keys[j].Season
	})

	summaries := make([]Summary, 0, len(keys))
	for _, key := range keys {
		s := byKey[key]
		if s.Compared > 0 {
			for _, name := range setNames {
				s.Averages[name] = float64(totals[key][name]) / float64(s.Compared)
			}
		}
		summaries = append(summaries, *s)
	}

	return summaries
}

// Package retention counts how many players carry over from one match to the
// next within a squad's season.
package retention

import (
	"sort"

	"github.com/pmurley/rugby-stats/internal/models"
)

// partitionKey identifies an independent retention sequence
type partitionKey struct {
	Squad  string
	Season string
}

type playerSet map[string]struct{}

func newPlayerSet(players []string) playerSet {
	s := make(playerSet, len(players))
	for _, p := range players {
		s[p] = struct{}{}
	}
	return s
}

// intersect returns the size of a ∩ b, iterating over the smaller set
func intersect(a, b playerSet) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for p := range a {
		if _, ok := b[p]; ok {
			n++
		}
	}
	return n
}

// Compute returns one RetentionRecord per match. Matches are partitioned by
// squad and season, ordered by date (input order breaks ties), and each match
// is compared with the one before it. The first match of every partition has
// no previous match and its counts are undefined.
//
// Records come back ordered by squad, season, then date. Nothing is returned
// if any match is invalid.
func Compute(matches []models.Match, setNames []string) ([]models.RetentionRecord, error) {
	if err := validateSetNames(setNames); err != nil {
		return nil, err
	}
	for i := range matches {
		if err := validateMatch(i, &matches[i], setNames); err != nil {
			return nil, err
		}
	}

	partitions := make(map[partitionKey][]int)
	var keys []partitionKey
	for i := range matches {
		key := partitionKey{Squad: matches[i].Squad, Season: matches[i].Season}
		if _, ok := partitions[key]; !ok {
			keys = append(keys, key)
		}
		partitions[key] = append(partitions[key], i)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Squad != keys[j].Squad {
			return keys[i].Squad < keys[j].Squad
		}
		return keys[i].Season < keys[j].Season
	})

	records := make([]models.RetentionRecord, 0, len(matches))
	for _, key := range keys {
		records = append(records, computePartition(matches, partitions[key], setNames)...)
	}

	return records, nil
}

// computePartition folds over one squad/season. idx holds input positions in
// input order, so a stable sort keeps same-day matches in the order given.
func computePartition(matches []models.Match, idx []int, setNames []string) []models.RetentionRecord {
	sort.SliceStable(idx, func(i, j int) bool {
		return matches[idx[i]].Date.Before(matches[idx[j]].Date)
	})

	records := make([]models.RetentionRecord, 0, len(idx))
	var previous map[string]playerSet

	for _, i := range idx {
		m := &matches[i]

		current := make(map[string]playerSet, len(setNames))
		for _, name := range setNames {
			current[name] = newPlayerSet(m.Sets[name])
		}

		rec := models.RetentionRecord{
			MatchID:     m.ID,
			Squad:       m.Squad,
			Season:      m.Season,
			Date:        m.Date,
			HasPrevious: previous != nil,
			Counts:      make(map[string]int, len(setNames)),
		}
		for _, name := range setNames {
			if previous == nil {
				rec.Counts[name] = 0
				continue
			}
			rec.Counts[name] = intersect(current[name], previous[name])
		}

		records = append(records, rec)
		previous = current
	}

	return records
}

func validateSetNames(setNames []string) error {
	seen := make(map[string]bool, len(setNames))
	for _, name := range setNames {
		if name == "" {
			return &InvalidInputError{Index: -1, Field: "setNames", Reason: "empty set name"}
		}
		if seen[name] {
			return &InvalidInputError{Index: -1, Field: "setNames", Reason: "duplicate set name " + name}
		}
		seen[name] = true
	}
	return nil
}

func validateMatch(i int, m *models.Match, setNames []string) error {
	switch {
	case m.ID == "":
		return &InvalidInputError{Index: i, Field: "id", Reason: "missing match id"}
	case m.Squad == "":
		return &InvalidInputError{Index: i, MatchID: m.ID, Field: "squad", Reason: "missing grouping key"}
	case m.Season == "":
		return &InvalidInputError{Index: i, MatchID: m.ID, Field: "season", Reason: "missing season"}
	}

	for _, name := range setNames {
		if _, ok := m.Sets[name]; !ok {
			return &InvalidInputError{Index: i, MatchID: m.ID, Field: name, Reason: "missing player set"}
		}
	}
	return nil
}

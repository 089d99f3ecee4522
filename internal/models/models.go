package models

import (
	"encoding/json"
	"time"
)

// Default player set names produced by the team sheet loader
const (
	SetStarters  = "starters"
	SetForwards  = "forwards"
	SetBacks     = "backs"
	SetFullSquad = "fullSquad"
)

// DefaultSetNames lists the sets retention is usually computed for
var DefaultSetNames = []string{SetStarters, SetForwards, SetBacks, SetFullSquad}

// Match represents one team's lineup in one fixture
type Match struct {
	ID         string              // Opaque match identifier
	Squad      string              // Grouping key, e.g. "1st" or "2nd"
	Season     string              // e.g. "2024/25"
	Date       time.Time           // Chronological sort key
	Opposition string              // Display only
	Sets       map[string][]string // Set name -> player identifiers
}

// RetentionRecord holds the retained counts for one match
type RetentionRecord struct {
	MatchID     string
	Squad       string
	Season      string
	Date        time.Time
	HasPrevious bool           // False for the first match of a squad/season
	Counts      map[string]int // Set name -> players also in the previous match
}

// Retained returns the retained count for a set, or false if it is undefined
func (r *RetentionRecord) Retained(setName string) (int, bool) {
	if !r.HasPrevious {
		return 0, false
	}
	n, ok := r.Counts[setName]
	return n, ok
}

// MarshalJSON renders undefined counts as null
func (r RetentionRecord) MarshalJSON() ([]byte, error) {
	retained := make(map[string]*int, len(r.Counts))
	for name, n := range r.Counts {
		if r.HasPrevious {
			retained[name] = &n
		} else {
			retained[name] = nil
		}
	}

	return json.Marshal(struct {
		MatchID  string          `json:"matchId"`
		Squad    string          `json:"squad"`
		Season   string          `json:"season"`
		Date     string          `json:"date"`
		Retained map[string]*int `json:"retained"`
	}{
		MatchID:  r.MatchID,
		Squad:    r.Squad,
		Season:   r.Season,
		Date:     r.Date.Format(DateLayout),
		Retained: retained,
	})
}

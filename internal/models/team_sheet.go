package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date format used in output files
const DateLayout = "2006-01-02"

// ukDateLayout is how dates are typed into the club spreadsheets
const ukDateLayout = "02/01/2006"

// Position categories by shirt number
const (
	Forwards = "Forwards"
	Backs    = "Backs"
	Bench    = "Bench"
)

// TeamSheetRow represents one match row of a team sheet export
type TeamSheetRow struct {
	Squad      string         // Squad column - "1st", "2nd"
	Season     string         // Season column, may be blank
	Date       time.Time      // Date column
	Opposition string         // Opposition with any (H)/(A) marker removed
	GameID     string         // GameID column, may be blank
	Players    map[int]string // Shirt number -> player name
}

// PositionCategory maps a shirt number to Forwards, Backs or Bench
func PositionCategory(shirt int) string {
	switch {
	case shirt <= 8:
		return Forwards
	case shirt <= 15:
		return Backs
	default:
		return Bench
	}
}

// SeasonForDate returns the season a date falls in. Seasons run July to June.
func SeasonForDate(d time.Time) string {
	start := d.Year()
	if d.Month() < time.July {
		start--
	}
	return fmt.Sprintf("%d/%02d", start, (start+1)%100)
}

// ParseDate accepts ISO dates and UK day-first dates
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, ukDateLayout} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// CleanOpposition strips the home/away marker from an opposition name
func CleanOpposition(s string) string {
	s = strings.ReplaceAll(s, "(H)", "")
	s = strings.ReplaceAll(s, "(A)", "")
	return strings.TrimSpace(s)
}

// HeaderIndex maps header names to column positions
type HeaderIndex map[string]int

// NewHeaderIndex builds a HeaderIndex from a header row
func NewHeaderIndex(headerRow []string) HeaderIndex {
	idx := make(HeaderIndex, len(headerRow))
	for i, h := range headerRow {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return idx
}

func (h HeaderIndex) value(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ShirtColumns returns the shirt numbers present in the header, ascending
func (h HeaderIndex) ShirtColumns() []int {
	var shirts []int
	for name := range h {
		if n, err := strconv.Atoi(name); err == nil && n > 0 {
			shirts = append(shirts, n)
		}
	}
	sort.Ints(shirts)
	return shirts
}

// ParseTeamSheetRow parses a CSV row into a TeamSheetRow.
// Returns nil, nil for blank rows.
func ParseTeamSheetRow(row []string, header HeaderIndex) (*TeamSheetRow, error) {
	t := &TeamSheetRow{
		Squad:      header.value(row, "Squad"),
		Season:     header.value(row, "Season"),
		Opposition: CleanOpposition(header.value(row, "Opposition")),
		GameID:     header.value(row, "GameID"),
		Players:    make(map[int]string),
	}

	for _, shirt := range header.ShirtColumns() {
		if name := header.value(row, strconv.Itoa(shirt)); name != "" {
			t.Players[shirt] = name
		}
	}

	// Skip spreadsheet padding rows
	if t.Opposition == "" && len(t.Players) == 0 {
		return nil, nil
	}

	date := header.value(row, "Date")
	if date == "" {
		return nil, fmt.Errorf("missing date")
	}
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	t.Date = d

	if t.Season == "" {
		t.Season = SeasonForDate(d)
	}

	return t, nil
}

// PlayerSets splits the lineup into the default named sets
func (t *TeamSheetRow) PlayerSets() map[string][]string {
	sets := map[string][]string{
		SetStarters:  {},
		SetForwards:  {},
		SetBacks:     {},
		SetFullSquad: {},
	}

	shirts := make([]int, 0, len(t.Players))
	for shirt := range t.Players {
		shirts = append(shirts, shirt)
	}
	sort.Ints(shirts)

	for _, shirt := range shirts {
		name := t.Players[shirt]
		sets[SetFullSquad] = append(sets[SetFullSquad], name)

		switch PositionCategory(shirt) {
		case Forwards:
			sets[SetForwards] = append(sets[SetForwards], name)
			sets[SetStarters] = append(sets[SetStarters], name)
		case Backs:
			sets[SetBacks] = append(sets[SetBacks], name)
			sets[SetStarters] = append(sets[SetStarters], name)
		}
	}

	return sets
}

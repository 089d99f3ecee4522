package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionCategory(t *testing.T) {
	assert.Equal(t, Forwards, PositionCategory(1))
	assert.Equal(t, Forwards, PositionCategory(8))
	assert.Equal(t, Backs, PositionCategory(9))
	assert.Equal(t, Backs, PositionCategory(15))
	assert.Equal(t, Bench, PositionCategory(16))
	assert.Equal(t, Bench, PositionCategory(23))
}

func TestSeasonForDate(t *testing.T) {
	tests := map[string]string{
		"2024-09-14": "2024/25",
		"2025-03-01": "2024/25",
		"2025-06-30": "2024/25",
		"2025-07-01": "2025/26",
		"1999-10-10": "1999/00",
	}

	for date, want := range tests {
		d, err := ParseDate(date)
		require.NoError(t, err)
		assert.Equal(t, want, SeasonForDate(d), date)
	}
}

func TestParseDate(t *testing.T) {
	iso, err := ParseDate("2024-09-14")
	require.NoError(t, err)

	uk, err := ParseDate(" 14/09/2024 ")
	require.NoError(t, err)
	assert.True(t, iso.Equal(uk))

	_, err = ParseDate("Sept 14th")
	assert.Error(t, err)
}

func TestCleanOpposition(t *testing.T) {
	assert.Equal(t, "Hove", CleanOpposition("Hove (H)"))
	assert.Equal(t, "Crawley", CleanOpposition(" Crawley (A)"))
	assert.Equal(t, "Lewes", CleanOpposition("Lewes"))
}

func TestParseTeamSheetRow(t *testing.T) {
	header := NewHeaderIndex([]string{"Squad", "Season", "Date", "Opposition", "1", "2", "9", "16"})

	row, err := ParseTeamSheetRow([]string{"1st", "", "07/09/2024", "Hove (H)", "Ann", "Bob", "Cat", ""}, header)
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.Equal(t, "1st", row.Squad)
	assert.Equal(t, "2024/25", row.Season, "season derived from date")
	assert.Equal(t, "Hove", row.Opposition)
	assert.Equal(t, map[int]string{1: "Ann", 2: "Bob", 9: "Cat"}, row.Players)
}

func TestParseTeamSheetRowSkipsBlankRows(t *testing.T) {
	header := NewHeaderIndex([]string{"Squad", "Season", "Date", "Opposition", "1"})

	row, err := ParseTeamSheetRow([]string{"1st", "2024/25", "", "", ""}, header)
	assert.NoError(t, err)
	assert.Nil(t, row)

	row, err = ParseTeamSheetRow([]string{"1st"}, header)
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestParseTeamSheetRowRequiresDate(t *testing.T) {
	header := NewHeaderIndex([]string{"Squad", "Date", "Opposition", "1"})

	_, err := ParseTeamSheetRow([]string{"1st", "", "Hove", "Ann"}, header)
	assert.Error(t, err)

	_, err = ParseTeamSheetRow([]string{"1st", "soon", "Hove", "Ann"}, header)
	assert.Error(t, err)
}

func TestPlayerSets(t *testing.T) {
	row := &TeamSheetRow{Players: map[int]string{
		1: "Prop", 8: "Number8", 9: "Scrum", 15: "Full", 16: "Sub",
	}}

	sets := row.PlayerSets()
	assert.Equal(t, []string{"Prop", "Number8"}, sets[SetForwards])
	assert.Equal(t, []string{"Scrum", "Full"}, sets[SetBacks])
	assert.Equal(t, []string{"Prop", "Number8", "Scrum", "Full"}, sets[SetStarters])
	assert.Equal(t, []string{"Prop", "Number8", "Scrum", "Full", "Sub"}, sets[SetFullSquad])
}

func TestPlayerSetsEmptyLineup(t *testing.T) {
	sets := (&TeamSheetRow{Players: map[int]string{}}).PlayerSets()
	for _, name := range DefaultSetNames {
		v, ok := sets[name]
		assert.True(t, ok, name)
		assert.Empty(t, v, name)
	}
}

func TestRetentionRecordJSON(t *testing.T) {
	date := time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC)

	first, err := json.Marshal(RetentionRecord{
		MatchID: "Hove", Squad: "1st", Season: "2024/25", Date: date,
		Counts: map[string]int{"starters": 0},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"matchId":"Hove","squad":"1st","season":"2024/25","date":"2024-09-14","retained":{"starters":null}}`, string(first))

	next, err := json.Marshal(RetentionRecord{
		MatchID: "Lewes", Squad: "1st", Season: "2024/25", Date: date,
		HasPrevious: true, Counts: map[string]int{"starters": 11},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"matchId":"Lewes","squad":"1st","season":"2024/25","date":"2024-09-14","retained":{"starters":11}}`, string(next))
}

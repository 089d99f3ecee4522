package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/rugby-stats/internal/models"
)

func TestSummarize(t *testing.T) {
	matches := []models.Match{
		match("M1", "1st", "2024/25", "2024-09-07", map[string][]string{"starters": {"A", "B", "C"}, "backs": {"C"}}),
		match("M2", "1st", "2024/25", "2024-09-14", map[string][]string{"starters": {"A", "B", "D"}, "backs": {"C"}}),
		match("M3", "1st", "2024/25", "2024-09-21", map[string][]string{"starters": {"A", "E", "F"}, "backs": {}}),
		match("S1", "2nd", "2024/25", "2024-09-07", map[string][]string{"starters": {"X"}, "backs": {"X"}}),
	}
	sets := []string{"starters", "backs"}

	records, err := Compute(matches, sets)
	require.NoError(t, err)

	summaries := Summarize(records, sets)
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, "1st", first.Squad)
	assert.Equal(t, 3, first.Matches)
	assert.Equal(t, 2, first.Compared)

	avg, ok := first.Average("starters")
	require.True(t, ok)
	assert.InDelta(t, 1.5, avg, 1e-9)

	avg, ok = first.Average("backs")
	require.True(t, ok)
	assert.InDelta(t, 0.5, avg, 1e-9)

	second := summaries[1]
	assert.Equal(t, "2nd", second.Squad)
	assert.Equal(t, 1, second.Matches)
	assert.Equal(t, 0, second.Compared)
	_, ok = second.Average("starters")
	assert.False(t, ok, "a single match has nothing to average")
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil, models.DefaultSetNames))
}

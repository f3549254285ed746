package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOwners() []schema.OwnerStat {
	best := schema.TeamSeasonRecord{RawName: "Team Sam", SeasonYear: 2021, Wins: 11, Losses: 3}
	return []schema.OwnerStat{
		{
			Name:        "Sam",
			Color:       schema.PaletteColor(0),
			IsActive:    true,
			Teams:       []schema.TeamSeasonRecord{best},
			TotalWins:   11,
			TotalLosses: 3,
			TotalPF:     1520.5,
			TotalPA:     1301.2,
			WinPct:      11.0 / 14.0,
			Titles:      1,
			BestSeason:  &best,
			WinPcts:     []float64{11.0 / 14.0},
		},
		{
			Name:        "Alex",
			Color:       schema.PaletteColor(1),
			TotalWins:   3,
			TotalLosses: 11,
			WinPct:      3.0 / 14.0,
			WinPcts:     []float64{3.0 / 14.0},
		},
	}
}

func TestWriteJSONResultsForOwners(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForOwners(&buf, sampleOwners())
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "Sam", result[0]["name"])
	assert.Equal(t, contract.EliteValue, result[0]["label"])
	assert.Equal(t, float64(1), result[0]["titles"])

	assert.Equal(t, float64(2), result[1]["rank"])
	assert.Equal(t, contract.StrugglingValue, result[1]["label"])
}

func TestWriteCSVResultsForOwners(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForOwners(w, sampleOwners(), fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "Sam")
	assert.Contains(t, lines[0], ".786")
	assert.Contains(t, lines[0], "1520.5")
	assert.Contains(t, lines[0], "2021")
	assert.Contains(t, lines[0], "true")
}

func TestWriteOwnerTable(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 120}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeOwnerTable(sampleOwners(), cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, "11-3")
	assert.Contains(t, out, ".786")
	assert.Contains(t, out, contract.EliteValue)
	assert.Contains(t, out, "Showing top 2 owners (total titles: 1)")
}

func TestWriteOwnerTableWithSparkAndDetail(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 160, Detail: true, Spark: true}
	fmtFloat, _ := createFormatters(cfg.Precision)

	owners := sampleOwners()
	current := schema.TeamSeasonRecord{SeasonYear: 2022, Wins: 2, Losses: 1, InProgress: true}
	owners[0].CurrentSeason = &current

	var buf bytes.Buffer
	err := writeOwnerTable(owners, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Trend")
	assert.Contains(t, out, "2021 (11-3)")
	assert.Contains(t, out, "Sam *")
	assert.Contains(t, out, "season in progress")
}

func TestFormatBestSeason(t *testing.T) {
	assert.Equal(t, "-", formatBestSeason(nil))

	best := schema.TeamSeasonRecord{SeasonYear: 2020, Wins: 9, Losses: 5}
	assert.Equal(t, "2020 (9-5)", formatBestSeason(&best))
}

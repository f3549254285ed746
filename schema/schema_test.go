package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamSeasonRecordWinPct(t *testing.T) {
	t.Run("regular record", func(t *testing.T) {
		rec := TeamSeasonRecord{Wins: 10, Losses: 4}
		assert.Equal(t, 14, rec.Games())
		assert.InDelta(t, 0.714, rec.WinPct(), 0.001)
	})

	t.Run("zero games has zero pct, not NaN", func(t *testing.T) {
		rec := TeamSeasonRecord{}
		assert.Equal(t, 0.0, rec.WinPct())
	})

	t.Run("ties do not count as games", func(t *testing.T) {
		rec := TeamSeasonRecord{Wins: 5, Losses: 5, Ties: 4}
		assert.Equal(t, 10, rec.Games())
		assert.Equal(t, 0.5, rec.WinPct())
	})
}

func TestNewOwnerStatRecord(t *testing.T) {
	best := TeamSeasonRecord{SeasonYear: 2021, Wins: 12, Losses: 2}
	stat := OwnerStat{
		Name:        "Sam",
		Color:       OwnerPalette[0],
		IsActive:    true,
		Teams:       []TeamSeasonRecord{best, {SeasonYear: 2020, Wins: 6, Losses: 8}},
		TotalWins:   18,
		TotalLosses: 10,
		TotalPF:     3100.5,
		WinPct:      18.0 / 28.0,
		Titles:      1,
		BestSeason:  &best,
	}

	rec := NewOwnerStatRecord(7, stat)
	assert.Equal(t, int64(7), rec.RunID)
	assert.Equal(t, "Sam", rec.OwnerName)
	assert.Equal(t, int32(2), rec.Seasons)
	assert.Equal(t, int32(18), rec.TotalWins)
	assert.Equal(t, int32(1), rec.Titles)
	if assert.NotNil(t, rec.BestSeasonYear) {
		assert.Equal(t, int32(2021), *rec.BestSeasonYear)
	}
	if assert.NotNil(t, rec.BestSeasonPct) {
		assert.InDelta(t, 12.0/14.0, *rec.BestSeasonPct, 0.001)
	}
}

func TestNewOwnerStatRecordNoBestSeason(t *testing.T) {
	rec := NewOwnerStatRecord(1, OwnerStat{Name: "Fresh"})
	assert.Nil(t, rec.BestSeasonYear)
	assert.Nil(t, rec.BestSeasonPct)
}

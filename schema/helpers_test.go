package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		wins, losses, ties int
		want               string
	}{
		{10, 4, 0, "10-4"},
		{10, 4, 1, "10-4-1"},
		{0, 0, 0, "0-0"},
		{87, 45, 2, "87-45-2"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatRecord(tc.wins, tc.losses, tc.ties))
	}
}

func TestFormatWinPct(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, ".000"},
		{0.5, ".500"},
		{10.0 / 14.0, ".714"},
		{1, "1.000"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatWinPct(tc.pct))
	}
}

func TestSparkline(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Sparkline(nil))
	})

	t.Run("extremes map to first and last glyphs", func(t *testing.T) {
		assert.Equal(t, "▁█", Sparkline([]float64{0, 1}))
	})

	t.Run("out of range values are clamped", func(t *testing.T) {
		assert.Equal(t, "▁█", Sparkline([]float64{-0.5, 1.5}))
	})

	t.Run("one glyph per value", func(t *testing.T) {
		line := Sparkline([]float64{0.1, 0.5, 0.9, 0.3})
		assert.Equal(t, 4, len([]rune(line)))
	})
}

func TestParsePlayoffResult(t *testing.T) {
	tests := []struct {
		raw  string
		want PlayoffResult
	}{
		{"champion", PlayoffChampion},
		{"CHAMPION", PlayoffChampion},
		{"runner_up", PlayoffRunnerUp},
		{"runner-up", PlayoffRunnerUp},
		{"eliminated", PlayoffElim},
		{"missed", PlayoffMissed},
		{"", PlayoffNone},
		{"null", PlayoffNone},
		{"garbage", PlayoffNone},
		{"  champion  ", PlayoffChampion},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParsePlayoffResult(tc.raw), "raw=%q", tc.raw)
	}
}

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, OwnerPalette[0], PaletteColor(0))
	assert.Equal(t, OwnerPalette[14], PaletteColor(14))

	// Cycles by index past the palette size.
	assert.Equal(t, OwnerPalette[0], PaletteColor(15))
	assert.Equal(t, OwnerPalette[2], PaletteColor(17))

	// Negative index is treated as the first slot.
	assert.Equal(t, OwnerPalette[0], PaletteColor(-3))
}

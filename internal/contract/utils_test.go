package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		winPct float64
		want   string
	}{
		{0.750, EliteValue},
		{0.600, EliteValue},
		{0.599, ContenderValue},
		{0.500, ContenderValue},
		{0.499, AverageValue},
		{0.400, AverageValue},
		{0.399, StrugglingValue},
		{0, StrugglingValue},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, GetPlainLabel(tc.winPct), "winPct=%v", tc.winPct)
	}
}

func TestTruncateName(t *testing.T) {
	t.Run("short name unchanged", func(t *testing.T) {
		assert.Equal(t, "Sam", TruncateName("Sam", 10))
	})

	t.Run("long name truncated with ellipsis", func(t *testing.T) {
		assert.Equal(t, "The Ave...", TruncateName("The Average Joes of Fantasy", 10))
	})

	t.Run("tiny width returns name unchanged", func(t *testing.T) {
		assert.Equal(t, "Longish", TruncateName("Longish", 3))
	})

	t.Run("unicode name truncates by rune", func(t *testing.T) {
		got := TruncateName("五六七八九十一二三四", 8)
		assert.Equal(t, "五六七八九...", got)
	})
}

func TestParseBoolString(t *testing.T) {
	trues := []string{"yes", "YES", "true", "1"}
	for _, s := range trues {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, got, "input=%q", s)
	}

	falses := []string{"no", "False", "0"}
	for _, s := range falses {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, got, "input=%q", s)
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLeagueTable(t *testing.T) {
	result := &schema.VaultResult{
		LeagueStats: schema.LeagueStat{
			TotalSeasons: 8,
			TotalOwners:  12,
			TotalGames:   672,
			TotalPoints:  98452,
			TotalTitles:  8,
		},
	}
	cfg := &contract.Config{Precision: 1, CacheBackend: schema.SQLiteBackend}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeLeagueTable(result, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Seasons")
	assert.Contains(t, out, "672")
	assert.Contains(t, out, "98452.0")
	assert.Contains(t, out, "Cache backend: sqlite")
	assert.NotContains(t, out, "in progress")
}

func TestWriteLeagueTableWithLiveSeason(t *testing.T) {
	result := &schema.VaultResult{HasLiveSeason: true}
	cfg := &contract.Config{Precision: 1, CacheBackend: schema.NoneBackend}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeLeagueTable(result, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "season is in progress")
}

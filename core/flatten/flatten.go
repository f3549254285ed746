// Package flatten converts raw imported league history into per-season team
// records suitable for aggregation.
package flatten

import (
	"sort"
	"strconv"
	"strings"

	"github.com/clutchsports/clutchvault/schema"
)

// Flatten turns the year-keyed history payload into a flat slice of team
// season records, sorted by season year descending. Entries without an owner
// or team name are dropped; imports from some platforms include placeholder
// rows for vacant slots.
func Flatten(history map[int][]schema.TeamEntry, maxYear int) []schema.TeamSeasonRecord {
	var records []schema.TeamSeasonRecord

	for year, entries := range history {
		for _, entry := range entries {
			name := strings.TrimSpace(entry.ResolvedName())
			if name == "" {
				continue
			}
			playoff := schema.ParsePlayoffResult(entry.PlayoffResult)
			records = append(records, schema.TeamSeasonRecord{
				RawName:       name,
				TeamName:      strings.TrimSpace(entry.TeamName),
				SeasonYear:    year,
				Wins:          coerceInt(entry.Wins),
				Losses:        coerceInt(entry.Losses),
				Ties:          coerceInt(entry.Ties),
				PointsFor:     coerceFloat(entry.PointsFor),
				PointsAgainst: coerceFloat(entry.PointsAgainst),
				PlayoffResult: playoff,
				// The latest season without a playoff outcome is still
				// being played.
				InProgress: year == maxYear && maxYear > 0 && playoff == schema.PlayoffNone,
			})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].SeasonYear != records[j].SeasonYear {
			return records[i].SeasonYear > records[j].SeasonYear
		}
		return records[i].RawName < records[j].RawName
	})
	return records
}

// MaxYear returns the latest season year present in the history, or zero for
// an empty history. The latest season is treated as in progress.
func MaxYear(history map[int][]schema.TeamEntry) int {
	maxYear := 0
	for year := range history {
		if year > maxYear {
			maxYear = year
		}
	}
	return maxYear
}

// coerceInt converts loosely typed numeric values from JSON imports to an
// int. Unparseable values count as zero rather than failing the import.
func coerceInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

// coerceFloat converts loosely typed numeric values from JSON imports to a
// float64, defaulting to zero.
func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

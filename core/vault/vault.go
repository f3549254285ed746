// Package vault computes all-time owner and league statistics from flattened
// season records and the persisted owner-alias list.
package vault

import (
	"math"
	"sort"
	"strings"

	"github.com/clutchsports/clutchvault/schema"
)

// Compute aggregates season records into per-owner and league-wide stats.
// It is a pure function: the same records and aliases (including alias
// order, which fixes palette colors) always produce the same result.
//
// Ties in the final win-percentage sort and in best-season selection are
// broken by completed games descending, then name ascending.
func Compute(records []schema.TeamSeasonRecord, aliases []schema.OwnerAlias) schema.VaultResult {
	canonical := make(map[string]string, len(aliases))
	active := make(map[string]bool)
	colors := make(map[string]string)
	var order []string

	assignColor := func(owner string) {
		if _, ok := colors[owner]; !ok {
			colors[owner] = schema.PaletteColor(len(order))
			order = append(order, owner)
		}
	}

	// Colors follow first-seen order over aliases, then over records, so a
	// saved alias list pins every owner's color.
	for _, alias := range aliases {
		canonical[alias.OwnerName] = alias.CanonicalName
		if alias.IsActive {
			active[alias.CanonicalName] = true
		}
		assignColor(alias.CanonicalName)
	}

	grouped := make(map[string][]schema.TeamSeasonRecord)
	for _, record := range records {
		owner, ok := canonical[record.RawName]
		if !ok {
			owner = record.RawName
		}
		assignColor(owner)
		grouped[owner] = append(grouped[owner], record)
	}

	hasLiveSeason := false
	stats := make([]schema.OwnerStat, 0, len(grouped))
	for _, owner := range order {
		ownerRecords, ok := grouped[owner]
		if !ok {
			continue
		}
		stat := buildOwnerStat(owner, colors[owner], active[owner], ownerRecords)
		if stat.CurrentSeason != nil {
			hasLiveSeason = true
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].WinPct != stats[j].WinPct {
			return stats[i].WinPct > stats[j].WinPct
		}
		if stats[i].CompletedGames() != stats[j].CompletedGames() {
			return stats[i].CompletedGames() > stats[j].CompletedGames()
		}
		return stats[i].Name < stats[j].Name
	})

	return schema.VaultResult{
		OwnerStats:    stats,
		LeagueStats:   buildLeagueStat(records, stats),
		HasLiveSeason: hasLiveSeason,
	}
}

// buildOwnerStat aggregates one owner's records. Completed seasons drive the
// totals; an in-progress record is tracked separately as the current season.
func buildOwnerStat(name, color string, isActive bool, records []schema.TeamSeasonRecord) schema.OwnerStat {
	stat := schema.OwnerStat{Name: name, Color: color, IsActive: isActive}

	// Newest first for display.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SeasonYear > records[j].SeasonYear
	})
	stat.Teams = records

	var completed []schema.TeamSeasonRecord
	for _, record := range records {
		if record.InProgress {
			if stat.CurrentSeason == nil {
				r := record
				stat.CurrentSeason = &r
			}
			continue
		}
		completed = append(completed, record)
		stat.TotalWins += record.Wins
		stat.TotalLosses += record.Losses
		stat.TotalTies += record.Ties
		stat.TotalPF += record.PointsFor
		stat.TotalPA += record.PointsAgainst
		if record.PlayoffResult == schema.PlayoffChampion {
			stat.Titles++
		}
	}

	if games := stat.CompletedGames(); games > 0 {
		stat.WinPct = float64(stat.TotalWins) / float64(games)
	}

	// Ascending season order for the sparkline.
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].SeasonYear < completed[j].SeasonYear
	})
	for _, record := range completed {
		record := record
		stat.WinPcts = append(stat.WinPcts, record.WinPct())
		if betterSeason(&record, stat.BestSeason) {
			stat.BestSeason = &record
		}
	}
	return stat
}

// betterSeason reports whether candidate beats current for best-season
// selection: higher win percentage, then more games, then raw name ascending.
func betterSeason(candidate, current *schema.TeamSeasonRecord) bool {
	if current == nil {
		return true
	}
	if candidate.WinPct() != current.WinPct() {
		return candidate.WinPct() > current.WinPct()
	}
	if candidate.Games() != current.Games() {
		return candidate.Games() > current.Games()
	}
	return strings.Compare(candidate.RawName, current.RawName) < 0
}

// buildLeagueStat computes league-wide totals. Season count covers every
// record; games, points, and titles cover completed seasons only.
func buildLeagueStat(records []schema.TeamSeasonRecord, stats []schema.OwnerStat) schema.LeagueStat {
	years := make(map[int]struct{})
	gameSides := 0
	totalPoints := 0.0
	totalTitles := 0

	for _, record := range records {
		years[record.SeasonYear] = struct{}{}
		if record.InProgress {
			continue
		}
		totalPoints += record.PointsFor
		gameSides += record.Games()
	}
	for _, stat := range stats {
		totalTitles += stat.Titles
	}

	return schema.LeagueStat{
		TotalSeasons: len(years),
		TotalOwners:  len(stats),
		// Every game has two fantasy teams, each counting it once.
		TotalGames:  int(math.Round(float64(gameSides) / 2)),
		TotalPoints: math.Round(totalPoints),
		TotalTitles: totalTitles,
	}
}

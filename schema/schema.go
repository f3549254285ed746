// Package schema has configs, models and shared types for all parts of clutchvault.
package schema

// TeamSeasonRecord represents one fantasy team's performance in one season.
// Records are produced by flattening the import-history payload and are
// read-only downstream; only the derived InProgress flag is computed at
// aggregation time.
type TeamSeasonRecord struct {
	RawName       string        `json:"rawName"`       // Team name exactly as imported
	TeamName      string        `json:"teamName"`      // Display team name, may differ from RawName
	SeasonYear    int           `json:"seasonYear"`    // Four-digit season year
	Wins          int           `json:"wins"`          // Regular season wins
	Losses        int           `json:"losses"`        // Regular season losses
	Ties          int           `json:"ties"`          // Regular season ties
	PointsFor     float64       `json:"pointsFor"`     // Total points scored
	PointsAgainst float64       `json:"pointsAgainst"` // Total points allowed
	PlayoffResult PlayoffResult `json:"playoffResult"` // Playoff outcome, empty until playoffs finish
	InProgress    bool          `json:"inProgress"`    // True iff latest season with no playoff result yet
}

// Games returns the number of decided games in this record. Ties are not
// counted since win percentage is wins/(wins+losses).
func (r TeamSeasonRecord) Games() int {
	return r.Wins + r.Losses
}

// WinPct returns the single-season win percentage, 0 when no games were played.
func (r TeamSeasonRecord) WinPct() float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(games)
}

// OwnerAlias is a durable mapping from a raw imported team name to a
// canonical owner identity. The backend is the system of record; every
// OwnerName maps to exactly one CanonicalName at a time (last write wins).
type OwnerAlias struct {
	OwnerName     string `json:"ownerName"`
	CanonicalName string `json:"canonicalName"`
	IsActive      bool   `json:"isActive"`
}

// OwnerStat is the aggregated all-time line for a single canonical owner.
// It is derived entirely from TeamSeasonRecord and OwnerAlias data and is
// recomputed from scratch on every data change.
type OwnerStat struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsActive bool   `json:"isActive"`

	// Teams holds every season record for this owner, newest first,
	// including an in-progress season when one exists.
	Teams []TeamSeasonRecord `json:"teams"`

	// Totals cover completed seasons only.
	TotalWins   int     `json:"totalWins"`
	TotalLosses int     `json:"totalLosses"`
	TotalTies   int     `json:"totalTies"`
	TotalPF     float64 `json:"totalPointsFor"`
	TotalPA     float64 `json:"totalPointsAgainst"`

	WinPct float64 `json:"winPct"` // TotalWins/(TotalWins+TotalLosses), 0 when no games
	Titles int     `json:"titles"` // Championships among completed seasons

	// BestSeason is the completed season with the highest win percentage,
	// nil when the owner has no completed seasons.
	BestSeason *TeamSeasonRecord `json:"bestSeason,omitempty"`

	// WinPcts lists completed-season win percentages in ascending season
	// order, for sparkline rendering.
	WinPcts []float64 `json:"winPcts"`

	// CurrentSeason is the in-progress record for the latest season, if any.
	CurrentSeason *TeamSeasonRecord `json:"currentSeason,omitempty"`
}

// CompletedGames returns the number of decided games across completed seasons.
func (s OwnerStat) CompletedGames() int {
	return s.TotalWins + s.TotalLosses
}

// LeagueStat holds league-wide aggregates across all owners and seasons.
type LeagueStat struct {
	TotalSeasons int     `json:"totalSeasons"` // Distinct season years across all records
	TotalOwners  int     `json:"totalOwners"`
	TotalGames   int     `json:"totalGames"`  // round(sum(wins+losses)/2), both teams count each game
	TotalPoints  float64 `json:"totalPoints"` // round(sum of points for)
	TotalTitles  int     `json:"totalTitles"`
}

// VaultResult is the full output of the vault aggregation.
type VaultResult struct {
	OwnerStats    []OwnerStat `json:"ownerStats"`
	LeagueStats   LeagueStat  `json:"leagueStats"`
	HasLiveSeason bool        `json:"hasLiveSeason"`
}

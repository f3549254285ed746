package schema

// TeamEntry is one team's row in the imported history payload, as returned
// by GET /imports/history/{leagueId}. Numeric fields are deliberately
// loose: historical imports come from CSV uploads and third-party scrapes,
// so wins may arrive as a number, a numeric string, or garbage. The
// flattener coerces them; malformed values become zero.
type TeamEntry struct {
	OwnerName     string `json:"ownerName"`
	TeamName      string `json:"teamName"`
	Wins          any    `json:"wins"`
	Losses        any    `json:"losses"`
	Ties          any    `json:"ties"`
	PointsFor     any    `json:"pointsFor"`
	PointsAgainst any    `json:"pointsAgainst"`
	PlayoffResult string `json:"playoffResult"`
}

// ResolvedName returns the name this entry is keyed by: the owner name when
// present, otherwise the team name. Both blank means the entry is unusable.
func (e TeamEntry) ResolvedName() string {
	if e.OwnerName != "" {
		return e.OwnerName
	}
	return e.TeamName
}

// NameDetection is the per-team result of first-name detection: the raw
// team name, the seasons it appeared in, the dictionary names found in it,
// and near-miss suggestions when nothing matched exactly.
type NameDetection struct {
	RawName     string   `json:"rawName"`
	Seasons     []int    `json:"seasons"`
	Detected    []string `json:"detected"`
	Suggestions []string `json:"suggestions,omitempty"`
}

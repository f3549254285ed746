package schema

import "time"

// VaultRunRecord represents a row from the clutchvault_runs table.
type VaultRunRecord struct {
	RunID         int64
	LeagueID      string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalOwners   int32
	ConfigParams  *string
}

// OwnerStatRecord represents a row from the clutchvault_owner_stats table.
// It is the flat, storable projection of an OwnerStat.
type OwnerStatRecord struct {
	RunID          int64
	OwnerName      string
	Color          string
	IsActive       bool
	Seasons        int32
	TotalWins      int32
	TotalLosses    int32
	TotalTies      int32
	TotalPF        float64
	TotalPA        float64
	WinPct         float64
	Titles         int32
	BestSeasonYear *int32
	BestSeasonPct  *float64
}

// CacheStatus represents the status of the history cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunStatus represents the status of the vault run store.
type RunStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int              `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id"`
	LastRunTime    time.Time        `json:"last_run_time"`
	OldestRunTime  time.Time        `json:"oldest_run_time"`
	TotalOwnerRows int              `json:"total_owner_rows"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}

// NewOwnerStatRecord flattens an OwnerStat into its storable projection.
func NewOwnerStatRecord(runID int64, s OwnerStat) OwnerStatRecord {
	rec := OwnerStatRecord{
		RunID:       runID,
		OwnerName:   s.Name,
		Color:       s.Color,
		IsActive:    s.IsActive,
		Seasons:     int32(len(s.Teams)),
		TotalWins:   int32(s.TotalWins),
		TotalLosses: int32(s.TotalLosses),
		TotalTies:   int32(s.TotalTies),
		TotalPF:     s.TotalPF,
		TotalPA:     s.TotalPA,
		WinPct:      s.WinPct,
		Titles:      int32(s.Titles),
	}
	if s.BestSeason != nil {
		year := int32(s.BestSeason.SeasonYear)
		pct := s.BestSeason.WinPct()
		rec.BestSeasonYear = &year
		rec.BestSeasonPct = &pct
	}
	return rec
}

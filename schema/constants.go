package schema

// Custom string types for type safety.
type (
	// PlayoffResult represents a team's playoff outcome for one season.
	PlayoffResult string

	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the database backend for caching and run tracking.
	CacheBackend string
)

// All playoff results supported. An empty result means the season has no
// playoff outcome recorded yet.
const (
	PlayoffNone     PlayoffResult = ""
	PlayoffChampion PlayoffResult = "champion"
	PlayoffRunnerUp PlayoffResult = "runner_up"
	PlayoffElim     PlayoffResult = "eliminated"
	PlayoffMissed   PlayoffResult = "missed"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All cache backends supported.
const (
	SQLiteBackend     CacheBackend = "sqlite" // default
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// OwnerPalette is the fixed 15-color palette assigned to canonical owners
// in first-seen order. Owners beyond the palette size cycle from the start.
var OwnerPalette = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
	"#bfef45", // lime
	"#fabed4", // pink
	"#469990", // teal
	"#9a6324", // brown
	"#800000", // maroon
	"#808000", // olive
	"#000075", // navy
	"#a9a9a9", // gray
}

// PaletteColor returns the palette entry for the given insertion index.
func PaletteColor(index int) string {
	if index < 0 {
		index = 0
	}
	return OwnerPalette[index%len(OwnerPalette)]
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"

	"github.com/olekukonko/tablewriter"
)

// PrintLeagueStats outputs the league-wide aggregates, dispatching based on the output format configured.
func PrintLeagueStats(result *schema.VaultResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result.LeagueStats)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"total_seasons", "total_owners", "total_games", "total_points", "total_titles"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return csvWriter.Write([]string{
					fmt.Sprintf(intFmt, result.LeagueStats.TotalSeasons),
					fmt.Sprintf(intFmt, result.LeagueStats.TotalOwners),
					fmt.Sprintf(intFmt, result.LeagueStats.TotalGames),
					fmtFloat(result.LeagueStats.TotalPoints),
					fmt.Sprintf(intFmt, result.LeagueStats.TotalTitles),
				})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeagueTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeLeagueTable generates and writes the human-readable summary table.
func writeLeagueTable(result *schema.VaultResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})

	league := result.LeagueStats
	data := [][]string{
		{"Seasons", strconv.Itoa(league.TotalSeasons)},
		{"Owners", strconv.Itoa(league.TotalOwners)},
		{"Games played", strconv.Itoa(league.TotalGames)},
		{"Points scored", fmtFloat(league.TotalPoints)},
		{"Championships", strconv.Itoa(league.TotalTitles)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.HasLiveSeason {
		if _, err := fmt.Fprintln(writer, "A season is in progress; its games are excluded from the totals above"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Aggregation completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

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
	"github.com/olekukonko/tablewriter/tw"
)

// PrintOwnerStats outputs the ranked owner stats, dispatching based on the output format configured.
func PrintOwnerStats(owners []schema.OwnerStat, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeOwnerJSONResults(owners, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeOwnerCSVResults(owners, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOwnerTable(owners, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeOwnerJSONResults handles opening the file and calling the JSON writer.
func writeOwnerJSONResults(owners []schema.OwnerStat, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForOwners(w, owners)
	}, "Wrote JSON")
}

// writeOwnerCSVResults handles opening the file and calling the CSV writer.
func writeOwnerCSVResults(owners []schema.OwnerStat, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"owner",
			"wins",
			"losses",
			"ties",
			"win_pct",
			"titles",
			"points_for",
			"points_against",
			"seasons",
			"best_season_year",
			"active",
			"label",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForOwners(csvWriter, owners, fmtFloat, intFmt)
		})
	}, "Wrote CSV")
}

// writeOwnerTable generates and writes the human-readable table.
func writeOwnerTable(owners []schema.OwnerStat, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Owner", "Record", "Win%", "Titles", "Label"}
	if cfg.Spark {
		headers = append(headers, "Trend")
	}
	if cfg.Detail {
		headers = append(headers, "PF", "PA", "Seasons", "Best")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, o := range owners {
		name := contract.TruncateName(o.Name, getMaxTableNameWidth(cfg))
		if o.CurrentSeason != nil {
			name += " *"
		}
		row := []string{
			strconv.Itoa(i + 1), // Rank
			name,                // Owner
			schema.FormatRecord(o.TotalWins, o.TotalLosses, o.TotalTies), // Record
			schema.FormatWinPct(o.WinPct),                                // Win%
			strconv.Itoa(o.Titles),                                       // Titles
			formatLabel(o.WinPct, cfg),                                   // Label
		}
		if cfg.Spark {
			row = append(row, schema.Sparkline(o.WinPcts)) // Trend
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(o.TotalPF),              // PF
				fmtFloat(o.TotalPA),              // PA
				strconv.Itoa(len(o.Teams)),       // Seasons
				formatBestSeason(o.BestSeason),   // Best
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totalTitles := 0
	liveOwners := 0
	for _, o := range owners {
		totalTitles += o.Titles
		if o.CurrentSeason != nil {
			liveOwners++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d owners (total titles: %d)\n", len(owners), totalTitles); err != nil {
		return err
	}
	if liveOwners > 0 {
		if _, err := fmt.Fprintf(writer, "* %d owners have a season in progress; live records are excluded from totals\n", liveOwners); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Aggregation completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForOwners writes the owner stats in CSV format.
func writeCSVResultsForOwners(w *csv.Writer, owners []schema.OwnerStat, fmtFloat func(float64) string, intFmt string) error {
	for i, o := range owners {
		bestYear := ""
		if o.BestSeason != nil {
			bestYear = strconv.Itoa(o.BestSeason.SeasonYear)
		}
		rec := []string{
			strconv.Itoa(i + 1),                 // Rank
			o.Name,                              // Owner
			fmt.Sprintf(intFmt, o.TotalWins),    // Wins
			fmt.Sprintf(intFmt, o.TotalLosses),  // Losses
			fmt.Sprintf(intFmt, o.TotalTies),    // Ties
			schema.FormatWinPct(o.WinPct),       // Win percentage
			fmt.Sprintf(intFmt, o.Titles),       // Titles
			fmtFloat(o.TotalPF),                 // Points for
			fmtFloat(o.TotalPA),                 // Points against
			fmt.Sprintf(intFmt, len(o.Teams)),   // Seasons
			bestYear,                            // Best season year
			strconv.FormatBool(o.IsActive),      // Active
			contract.GetPlainLabel(o.WinPct),    // Label
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForOwners writes the owner stats in JSON format.
func writeJSONResultsForOwners(w io.Writer, owners []schema.OwnerStat) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONOwnerStat struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.OwnerStat
	}

	output := make([]JSONOwnerStat, len(owners))
	for i, o := range owners {
		output[i] = JSONOwnerStat{
			Rank:      i + 1,
			Label:     contract.GetPlainLabel(o.WinPct),
			OwnerStat: o,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// formatBestSeason renders the best completed season as "2021 (11-3)".
func formatBestSeason(best *schema.TeamSeasonRecord) string {
	if best == nil {
		return "-"
	}
	return fmt.Sprintf("%d (%s)", best.SeasonYear, schema.FormatRecord(best.Wins, best.Losses, best.Ties))
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"

	"github.com/olekukonko/tablewriter"
)

// PrintDetections outputs name-detection results, dispatching based on the output format configured.
func PrintDetections(matches []schema.NameDetection, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matches)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"raw_name", "seasons", "detected", "suggestions"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, m := range matches {
					rec := []string{
						m.RawName,
						joinSeasons(m.Seasons, "|"),
						strings.Join(m.Detected, "|"),
						strings.Join(m.Suggestions, "|"),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDetectionTable(matches, duration, w)
		}, "Wrote table")
	}
}

// writeDetectionTable generates and writes the human-readable detection table.
func writeDetectionTable(matches []schema.NameDetection, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Team Name", "Seasons", "Detected", "Suggestions"})

	detected := 0
	var data [][]string
	for _, m := range matches {
		if len(m.Detected) > 0 {
			detected++
		}
		data = append(data, []string{
			m.RawName,
			joinSeasons(m.Seasons, ", "),
			strings.Join(m.Detected, ", "),
			strings.Join(m.Suggestions, ", "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Detected names in %d of %d teams\n", detected, len(matches)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Detection completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// joinSeasons renders season years with the given separator.
func joinSeasons(seasons []int, sep string) string {
	parts := make([]string, 0, len(seasons))
	for _, year := range seasons {
		parts = append(parts, strconv.Itoa(year))
	}
	return strings.Join(parts, sep)
}

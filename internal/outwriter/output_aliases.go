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

// PrintAliases outputs an owner-alias list, dispatching based on the output format configured.
func PrintAliases(aliases []schema.OwnerAlias, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, aliases)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"owner_name", "canonical_name", "is_active"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, a := range aliases {
					rec := []string{a.OwnerName, a.CanonicalName, strconv.FormatBool(a.IsActive)}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAliasTable(aliases, duration, w)
		}, "Wrote table")
	}
}

// writeAliasTable generates and writes the human-readable alias table.
func writeAliasTable(aliases []schema.OwnerAlias, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Raw Name", "Owner", "Active"})

	owners := make(map[string]struct{})
	var data [][]string
	for _, a := range aliases {
		owners[a.CanonicalName] = struct{}{}
		active := ""
		if a.IsActive {
			active = "yes"
		}
		data = append(data, []string{a.OwnerName, a.CanonicalName, active})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "%d aliases across %d owners\n", len(aliases), len(owners)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

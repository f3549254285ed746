package iocache

import (
	"errors"
	"fmt"

	"github.com/clutchsports/clutchvault/internal/parquet"
)

// ExecuteRunsExport performs the actual export of vault run data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no vault run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total vault runs: %d\n", status.TotalRuns)
	fmt.Printf("Total owner rows: %d\n", status.TotalOwnerRows)

	// Retrieve all vault runs
	vaultRuns, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve vault runs: %w", err)
	}

	// Retrieve all owner stat rows
	ownerStats, err := store.GetAllOwnerStats()
	if err != nil {
		return fmt.Errorf("failed to retrieve owner stats: %w", err)
	}

	// Convert to Parquet format
	parquetVaultRuns := parquet.ConvertVaultRunRecords(vaultRuns)
	parquetOwnerStats := parquet.ConvertOwnerStatRecords(ownerStats)

	// Write vault runs to Parquet
	vaultRunsFile := outputFile + ".vault_runs.parquet"
	if err := parquet.WriteVaultRunsParquet(parquetVaultRuns, vaultRunsFile); err != nil {
		return fmt.Errorf("failed to write vault runs: %w", err)
	}
	fmt.Printf("Exported %d vault runs to: %s\n", len(parquetVaultRuns), vaultRunsFile)

	// Write owner stats to Parquet
	ownerStatsFile := outputFile + ".owner_stats.parquet"
	if err := parquet.WriteOwnerStatsParquet(parquetOwnerStats, ownerStatsFile); err != nil {
		return fmt.Errorf("failed to write owner stats: %w", err)
	}
	fmt.Printf("Exported %d owner stat records to: %s\n", len(parquetOwnerStats), ownerStatsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

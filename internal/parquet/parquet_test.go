package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clutchsports/clutchvault/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVaultRuns() []VaultRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(3 * time.Second)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"league_id":"league-1","limit":10}`

	startTime2 := now.Add(-10 * time.Minute)
	// Second run is unfinished; its nullable fields stay nil.

	return []VaultRun{
		{
			RunID:         1,
			LeagueID:      "league-1",
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			TotalOwners:   12,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			LeagueID:      "league-2",
			StartTime:     startTime2,
			EndTime:       nil,
			RunDurationMs: nil,
			TotalOwners:   0,
			ConfigParams:  nil,
		},
	}
}

func sampleOwnerStats() []OwnerStats {
	bestYear := int32(2021)
	bestPct := 11.0 / 14.0

	return []OwnerStats{
		{
			RunID:          1,
			OwnerName:      "Sam",
			Color:          "cyan",
			IsActive:       true,
			Seasons:        8,
			TotalWins:      70,
			TotalLosses:    42,
			TotalTies:      0,
			TotalPF:        12052.5,
			TotalPA:        11480.25,
			WinPct:         0.625,
			Titles:         2,
			BestSeasonYear: &bestYear,
			BestSeasonPct:  &bestPct,
		},
		{
			RunID:          1,
			OwnerName:      "Alex",
			Color:          "magenta",
			IsActive:       false,
			Seasons:        3,
			TotalWins:      15,
			TotalLosses:    27,
			TotalTies:      1,
			TotalPF:        4120.75,
			TotalPA:        4590.0,
			WinPct:         15.0 / 42.0,
			Titles:         0,
			BestSeasonYear: nil, // No completed best season recorded
			BestSeasonPct:  nil,
		},
	}
}

func TestVaultRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sc := parquet.SchemaOf(new(VaultRun))
	require.NotNil(t, sc)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"league_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_owners",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := sc.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestOwnerStatsStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sc := parquet.SchemaOf(new(OwnerStats))
	require.NotNil(t, sc)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"owner_name",
		"color",
		"is_active",
		"seasons",
		"total_wins",
		"total_losses",
		"total_ties",
		"total_pf",
		"total_pa",
		"win_pct",
		"titles",
		"best_season_year",
		"best_season_pct",
	}

	for _, colName := range expectedColumns {
		col, ok := sc.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteVaultRunsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "vault_runs.parquet")

	data := sampleVaultRuns()
	require.NotEmpty(t, data, "Sample data should not be empty")

	// Write data to Parquet file
	err := WriteVaultRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[VaultRun](file)
	defer reader.Close()

	// Read all rows
	readData := make([]VaultRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	// Verify data integrity
	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].LeagueID, readData[i].LeagueID, "LeagueID should match")
		assert.Equal(t, data[i].TotalOwners, readData[i].TotalOwners, "TotalOwners should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].RunDurationMs == nil {
			assert.Nil(t, readData[i].RunDurationMs, "RunDurationMs should be nil")
		} else {
			require.NotNil(t, readData[i].RunDurationMs, "RunDurationMs should not be nil")
			assert.Equal(t, *data[i].RunDurationMs, *readData[i].RunDurationMs, "RunDurationMs should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteOwnerStatsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "owner_stats.parquet")

	data := sampleOwnerStats()
	require.NotEmpty(t, data, "Sample data should not be empty")

	// Write data to Parquet file
	err := WriteOwnerStatsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[OwnerStats](file)
	defer reader.Close()

	// Read all rows
	readData := make([]OwnerStats, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	// Verify data integrity
	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].OwnerName, readData[i].OwnerName, "OwnerName should match")
		assert.Equal(t, data[i].Color, readData[i].Color, "Color should match")
		assert.Equal(t, data[i].IsActive, readData[i].IsActive, "IsActive should match")
		assert.Equal(t, data[i].Seasons, readData[i].Seasons, "Seasons should match")
		assert.Equal(t, data[i].TotalWins, readData[i].TotalWins, "TotalWins should match")
		assert.Equal(t, data[i].TotalLosses, readData[i].TotalLosses, "TotalLosses should match")
		assert.Equal(t, data[i].Titles, readData[i].Titles, "Titles should match")
		assert.InDelta(t, data[i].TotalPF, readData[i].TotalPF, 0.001, "TotalPF should match")
		assert.InDelta(t, data[i].TotalPA, readData[i].TotalPA, 0.001, "TotalPA should match")
		assert.InDelta(t, data[i].WinPct, readData[i].WinPct, 1e-9, "WinPct should match")

		// Check nullable best season fields
		if data[i].BestSeasonYear == nil {
			assert.Nil(t, readData[i].BestSeasonYear, "BestSeasonYear should be nil")
		} else {
			require.NotNil(t, readData[i].BestSeasonYear, "BestSeasonYear should not be nil")
			assert.Equal(t, *data[i].BestSeasonYear, *readData[i].BestSeasonYear, "BestSeasonYear should match")
		}

		if data[i].BestSeasonPct == nil {
			assert.Nil(t, readData[i].BestSeasonPct, "BestSeasonPct should be nil")
		} else {
			require.NotNil(t, readData[i].BestSeasonPct, "BestSeasonPct should not be nil")
			assert.InDelta(t, *data[i].BestSeasonPct, *readData[i].BestSeasonPct, 1e-9, "BestSeasonPct should match")
		}
	}
}

func TestWriteVaultRunsParquet_EmptyData(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_vault_runs.parquet")

	// Write empty data
	err := WriteVaultRunsParquet([]VaultRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteOwnerStatsParquet_EmptyData(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_owner_stats.parquet")

	// Write empty data
	err := WriteOwnerStatsParquet([]OwnerStats{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteVaultRunsParquet_InvalidPath(t *testing.T) {
	// Try to write to invalid path
	err := WriteVaultRunsParquet(sampleVaultRuns(), "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestWriteOwnerStatsParquet_InvalidPath(t *testing.T) {
	// Try to write to invalid path
	err := WriteOwnerStatsParquet(sampleOwnerStats(), "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertVaultRunRecords(t *testing.T) {
	now := time.Now()
	end := now.Add(time.Second)
	durationMs := int32(1000)
	config := `{"league_id":"league-1"}`

	records := []schema.VaultRunRecord{
		{
			RunID:         7,
			LeagueID:      "league-1",
			StartTime:     now,
			EndTime:       &end,
			RunDurationMs: &durationMs,
			TotalOwners:   4,
			ConfigParams:  &config,
		},
		{
			RunID:     8,
			LeagueID:  "league-2",
			StartTime: now,
		},
	}

	converted := ConvertVaultRunRecords(records)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, "league-1", converted[0].LeagueID)
	assert.Equal(t, int32(4), converted[0].TotalOwners)
	require.NotNil(t, converted[0].EndTime)
	assert.Equal(t, end, *converted[0].EndTime)

	assert.Equal(t, int64(8), converted[1].RunID)
	assert.Nil(t, converted[1].EndTime)
	assert.Nil(t, converted[1].RunDurationMs)
	assert.Nil(t, converted[1].ConfigParams)
}

func TestConvertOwnerStatRecords(t *testing.T) {
	bestYear := int32(2019)
	bestPct := 0.75

	records := []schema.OwnerStatRecord{
		{
			RunID:          7,
			OwnerName:      "Sam",
			Color:          "cyan",
			IsActive:       true,
			Seasons:        5,
			TotalWins:      40,
			TotalLosses:    30,
			WinPct:         40.0 / 70.0,
			Titles:         1,
			BestSeasonYear: &bestYear,
			BestSeasonPct:  &bestPct,
		},
	}

	converted := ConvertOwnerStatRecords(records)
	require.Len(t, converted, 1)

	assert.Equal(t, "Sam", converted[0].OwnerName)
	assert.True(t, converted[0].IsActive)
	assert.Equal(t, int32(1), converted[0].Titles)
	require.NotNil(t, converted[0].BestSeasonYear)
	assert.Equal(t, int32(2019), *converted[0].BestSeasonYear)
}

func TestTimestampPrecision(t *testing.T) {
	// Test that timestamps are stored with nanosecond precision
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "timestamp_test.parquet")

	now := time.Now()

	testData := []VaultRun{
		{
			RunID:     1,
			LeagueID:  "league-1",
			StartTime: now,
			EndTime:   &now,
		},
	}

	// Write and read back
	err := WriteVaultRunsParquet(testData, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[VaultRun](file)
	defer reader.Close()

	readData := make([]VaultRun, reader.NumRows())
	_, err = reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}

	// Verify timestamp precision (should be within nanosecond)
	assert.WithinDuration(t, testData[0].StartTime, readData[0].StartTime, time.Nanosecond)
	assert.WithinDuration(t, *testData[0].EndTime, *readData[0].EndTime, time.Nanosecond)
}

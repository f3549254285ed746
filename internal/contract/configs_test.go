package contract

import (
	"testing"
	"time"

	"github.com/clutchsports/clutchvault/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation; individual tests
// mutate the fields under test.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		LeagueIDStr:  "league-123",
		BaseURL:      DefaultBaseURL,
		Limit:        10,
		Precision:    1,
		Output:       "text",
		CacheBackend: "sqlite",
		Color:        "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(_ *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "limit zero",
			mutate:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: true,
		},
		{
			name:        "limit above maximum",
			mutate:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: true,
		},
		{
			name:        "invalid precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = 3 },
			expectError: true,
		},
		{
			name:        "invalid output format",
			mutate:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: true,
		},
		{
			name:        "empty base url",
			mutate:      func(in *ConfigRawInput) { in.BaseURL = "" },
			expectError: true,
		},
		{
			name:        "base url without scheme",
			mutate:      func(in *ConfigRawInput) { in.BaseURL = "api.clutchfantasy.com" },
			expectError: true,
		},
		{
			name:        "invalid color flag",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
		{
			name:        "invalid cache backend",
			mutate:      func(in *ConfigRawInput) { in.CacheBackend = "redis" },
			expectError: true,
		},
		{
			name:        "invalid cache ttl",
			mutate:      func(in *ConfigRawInput) { in.CacheTTL = "six hours" },
			expectError: true,
		},
		{
			name:        "negative cache ttl",
			mutate:      func(in *ConfigRawInput) { in.CacheTTL = "-1h" },
			expectError: true,
		},
		{
			name: "mysql backend without connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
			},
			expectError: true,
		},
		{
			name: "mysql backend with connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pass@tcp(localhost:3306)/clutchvault"
			},
			expectError: false,
		},
		{
			name: "runs store sharing the cache sqlite file",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "sqlite"
				in.CacheDBConnect = "/tmp/shared.db"
				in.RunsBackend = "sqlite"
				in.RunsDBConnect = "/tmp/shared.db"
			},
			expectError: true,
		},
		{
			name: "runs store with its own sqlite file",
			mutate: func(in *ConfigRawInput) {
				in.RunsBackend = "sqlite"
				in.RunsDBConnect = "/tmp/runs.db"
			},
			expectError: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "league-123", cfg.LeagueID)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateCacheTTL(t *testing.T) {
	input := validInput()
	input.CacheTTL = "45m"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 45*time.Minute, cfg.CacheTTL)
}

func TestProcessAndValidateTrimsBaseURL(t *testing.T) {
	input := validInput()
	input.BaseURL = "https://vault.example.com/"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "https://vault.example.com", cfg.BaseURL)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	t.Run("sqlite accepts anything", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
		assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, "/tmp/foo.db"))
	})

	t.Run("mysql requires tcp host", func(t *testing.T) {
		assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost/db"))
		assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/db"))
	})

	t.Run("postgresql requires host and dbname", func(t *testing.T) {
		assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
		assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 dbname=vault"))
	})
}

// Package cmd defines the command-line interface for clutchvault.
package cmd

import (
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(ownersCmd)
	rootCmd.AddCommand(leagueCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(aliasesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the aliases subcommands to the parent aliases command
	aliasesCmd.AddCommand(aliasesListCmd)
	aliasesCmd.AddCommand(aliasesSeedCmd)
	aliasesCmd.AddCommand(aliasesApplyCmd)
	aliasesCmd.AddCommand(aliasesPushCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "Base URL of the Clutch API backend")
	rootCmd.PersistentFlags().String("api-token", "", "Bearer token for the Clutch API (prefer CLUTCHVAULT_API_TOKEN)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of owners to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-owner detail columns (PF/PA, best season)")
	rootCmd.PersistentFlags().Bool("spark", false, "Print the win-percentage sparkline column")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", "", "History cache time-to-live (e.g., 6h, 30m)")
	rootCmd.PersistentFlags().String("runs-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of detectCmd to Viper
	detectCmd.Flags().String("dictionary", "", "Path to a custom first-name dictionary file, one name per line")
	if err := viper.BindPFlags(detectCmd.Flags()); err != nil {
		contract.LogFatal("Error binding detect flags", err)
	}

	// Define mapping-file once on the aliases parent so apply and push share
	// a single viper binding. Binding the same key from two flag sets would
	// leave viper reading only the last one bound.
	aliasesCmd.PersistentFlags().String("mapping-file", "", "JSON file mapping raw team names to canonical owner names")
	if err := viper.BindPFlags(aliasesCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding aliases flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}

package cmd

import (
	"github.com/clutchsports/clutchvault/core"
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/spf13/cobra"
)

// detectCmd scans imported team names for likely human first names.
var detectCmd = &cobra.Command{
	Use:   "detect <league-id>",
	Short: "Detect human first names inside imported team names.",
	Long: `Scan the league's raw team names for likely human first names.

Imported team names often embed the owner's real name ("Mike's Mighty
Ducks", "team_sarah"). Detect tokenizes each distinct raw name and checks
every token against a first-name dictionary, giving the commissioner a
head start on alias assignment. Names with no exact hit get fuzzy
near-miss suggestions so typos still surface.

Examples:
  # Detect with the built-in dictionary
  clutchvault detect league-1

  # Use a custom dictionary file, one name per line
  clutchvault detect league-1 --dictionary ./names.txt`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDetect(rootCtx, cfg, leagueClient, cacheManager); err != nil {
			contract.LogFatal("Cannot run name detection", err)
		}
	},
}

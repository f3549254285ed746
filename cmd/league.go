package cmd

import (
	"github.com/clutchsports/clutchvault/core"
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/spf13/cobra"
)

// leagueCmd computes and prints league-wide aggregates.
var leagueCmd = &cobra.Command{
	Use:   "league <league-id>",
	Short: "Show league-wide totals across all owners and seasons.",
	Long: `Summarize the league's complete history in one view.

Displays:
- Total seasons and owners
- Total games played (both sides of each game count once)
- Total points scored
- Total championship titles awarded

Examples:
  # League summary
  clutchvault league league-1

  # Summary as JSON for scripting
  clutchvault league league-1 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLeagueSummary(rootCtx, cfg, leagueClient, cacheManager); err != nil {
			contract.LogFatal("Cannot compute league summary", err)
		}
	},
}

package cmd

import (
	"github.com/clutchsports/clutchvault/core"
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/spf13/cobra"
)

// ownersCmd computes and prints the all-time owner standings.
var ownersCmd = &cobra.Command{
	Use:   "owners <league-id>",
	Short: "Show all-time owner standings ranked by win percentage.",
	Long: `Aggregate the league's full import history into all-time owner stats.

Raw team names are reconciled into canonical owners using the league's
persisted aliases, then every completed season is rolled up per owner:
- Wins, losses, ties and win percentage
- Points for and points against
- Championship titles
- Best single season

An in-progress season is shown separately and never counts toward totals.

Examples:
  # Top 25 owners (default)
  clutchvault owners league-1

  # Full detail with the win-percentage sparkline
  clutchvault owners league-1 --detail --spark

  # Export standings to CSV for tracking
  clutchvault owners league-1 --output csv --output-file standings.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOwnerRankings(rootCtx, cfg, leagueClient, cacheManager); err != nil {
			contract.LogFatal("Cannot compute owner standings", err)
		}
	},
}

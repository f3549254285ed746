package cmd

import (
	"github.com/clutchsports/clutchvault/core"
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/spf13/cobra"
)

// aliasesCmd groups the owner-alias workflow subcommands.
var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Manage owner aliases (raw team name to canonical owner)",
	Long: `Manage the league's owner-alias list.

Aliases map raw imported team names to canonical owner identities. The
backend is the system of record; the typical workflow is:

  list  - Show the persisted alias list
  seed  - Dry run: show the alias batch a fresh session would produce
  apply - Dry run: replay a mapping file and show the resulting batch
  push  - Replay a mapping file and persist the batch to the backend

Examples:
  # Review the current aliases
  clutchvault aliases list league-1

  # Preview the batch a mapping file would produce
  clutchvault aliases apply league-1 --mapping-file owners.json

  # Persist it
  clutchvault aliases push league-1 --mapping-file owners.json`,
}

// aliasesListCmd prints the persisted alias list.
var aliasesListCmd = &cobra.Command{
	Use:   "list <league-id>",
	Short: "Show the persisted owner aliases for a league.",
	Long: `Fetch and print the league's persisted owner-alias list.

A league with no aliases yet prints an empty table rather than failing.

Examples:
  # List aliases
  clutchvault aliases list league-1`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAliasesList(rootCtx, cfg, leagueClient); err != nil {
			contract.LogFatal("Cannot list aliases", err)
		}
	},
}

// aliasesSeedCmd prints the batch a freshly seeded session would produce.
var aliasesSeedCmd = &cobra.Command{
	Use:   "seed <league-id>",
	Short: "Preview the self-aliases a fresh session would seed.",
	Long: `Build an assignment session and print the seeded alias batch.

When a league has no persisted aliases, the session seeds one self-alias
per team in the latest season. Nothing is persisted; use 'aliases push'
for that.

Examples:
  # Preview the seeded batch
  clutchvault aliases seed league-1`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAliasesSeed(rootCtx, cfg, leagueClient, cacheManager); err != nil {
			contract.LogFatal("Cannot seed aliases", err)
		}
	},
}

// aliasesApplyCmd replays a mapping file and prints the resulting batch.
var aliasesApplyCmd = &cobra.Command{
	Use:   "apply <league-id>",
	Short: "Preview the alias batch a mapping file would produce.",
	Long: `Replay claim directives from a mapping file onto a fresh session.

The mapping file is a JSON object of raw team name to canonical owner:

  {
    "Mike's Mighty Ducks": "Mike",
    "team_sarah": "Sarah"
  }

The resulting batch is printed but not persisted. Use 'aliases push' to
save it.

Examples:
  # Preview the applied batch
  clutchvault aliases apply league-1 --mapping-file owners.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAliasesApply(rootCtx, cfg, leagueClient, cacheManager); err != nil {
			contract.LogFatal("Cannot apply mapping file", err)
		}
	},
}

// aliasesPushCmd replays a mapping file and persists the batch.
var aliasesPushCmd = &cobra.Command{
	Use:   "push <league-id>",
	Short: "Replay a mapping file and persist the alias batch.",
	Long: `Replay claim directives from a mapping file and save the result.

The batch replaces the league's alias list wholesale in one write;
the backend applies it last-write-wins.

Examples:
  # Persist the mapped aliases
  clutchvault aliases push league-1 --mapping-file owners.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAliasesPush(rootCtx, cfg, leagueClient, cacheManager); err != nil {
			contract.LogFatal("Cannot push aliases", err)
		}
	},
}

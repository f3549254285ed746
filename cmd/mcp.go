package cmd

import (
	"github.com/clutchsports/clutchvault/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp <league-id>",
	Short: "Start the Clutchvault MCP server",
	Long:  `Launch an MCP server that allows AI agents to query owner standings, league stats and name detections via standard tools.`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, leagueClient, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

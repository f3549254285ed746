// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Clutchvault MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Clutchvault League Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	// --- 1. Tool: get_owner_rankings ---
	s.AddTool(mcp.NewTool("get_owner_rankings",
		mcp.WithDescription("Aggregate league history into all-time owner standings, ranked by win percentage."),
		mcp.WithString("league_id", mcp.Description("League identifier (defaults to the configured league).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of owners returned.")),
	), h.handleGetOwnerRankings)

	// --- 2. Tool: get_league_stats ---
	s.AddTool(mcp.NewTool("get_league_stats",
		mcp.WithDescription("Compute league-wide aggregates (seasons, games, points, titles) across all owners."),
		mcp.WithString("league_id", mcp.Description("League identifier (defaults to the configured league).")),
	), h.handleGetLeagueStats)

	// --- 3. Tool: detect_names ---
	s.AddTool(mcp.NewTool("detect_names",
		mcp.WithDescription("Scan imported team names for likely human first names, with fuzzy suggestions for near misses."),
		mcp.WithString("league_id", mcp.Description("League identifier (defaults to the configured league).")),
		mcp.WithString("dictionary", mcp.Description("Path to a custom first-name dictionary file, one name per line.")),
	), h.handleDetectNames)

	return s
}

// StartMCPServer starts the Clutchvault MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}

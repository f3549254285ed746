package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clutchsports/clutchvault/core"
	"github.com/clutchsports/clutchvault/core/algo"
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.LeagueClient
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGetOwnerRankings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if id := request.GetString("league_id", ""); id != "" {
		cfg.LeagueID = id
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, err := core.GetVaultResult(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	ranked := algo.RankOwners(result.OwnerStats, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(ranked, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLeagueStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if id := request.GetString("league_id", ""); id != "" {
		cfg.LeagueID = id
	}

	result, err := core.GetVaultResult(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result.LeagueStats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDetectNames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if id := request.GetString("league_id", ""); id != "" {
		cfg.LeagueID = id
	}
	if d := request.GetString("dictionary", ""); d != "" {
		cfg.Dictionary = d
	}

	matches, err := core.GetDetections(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("detection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

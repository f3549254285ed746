// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteOwners prints ranked owner stats using the configured output format.
func (ow *OutWriter) WriteOwners(owners []schema.OwnerStat, cfg *contract.Config, duration time.Duration) error {
	return PrintOwnerStats(owners, cfg, duration)
}

// WriteLeague prints league-wide aggregates using the configured output format.
func (ow *OutWriter) WriteLeague(result *schema.VaultResult, cfg *contract.Config, duration time.Duration) error {
	return PrintLeagueStats(result, cfg, duration)
}

// WriteDetections prints name-detection results using the configured output format.
func (ow *OutWriter) WriteDetections(matches []schema.NameDetection, cfg *contract.Config, duration time.Duration) error {
	return PrintDetections(matches, cfg, duration)
}

// WriteAliases prints an owner-alias list using the configured output format.
func (ow *OutWriter) WriteAliases(aliases []schema.OwnerAlias, cfg *contract.Config, duration time.Duration) error {
	return PrintAliases(aliases, cfg, duration)
}

// Package algo has ranking helpers shared by the command executors.
package algo

import (
	"sort"

	"github.com/clutchsports/clutchvault/schema"
)

// RankOwners sorts owners by their all-time win percentage in descending
// order and returns the top 'limit' owners. If limit is greater than the
// number of owners, all owners are returned in sorted order.
func RankOwners(owners []schema.OwnerStat, limit int) []schema.OwnerStat {
	sort.SliceStable(owners, func(i, j int) bool {
		if owners[i].WinPct != owners[j].WinPct {
			return owners[i].WinPct > owners[j].WinPct
		}
		if owners[i].CompletedGames() != owners[j].CompletedGames() {
			return owners[i].CompletedGames() > owners[j].CompletedGames()
		}
		return owners[i].Name < owners[j].Name
	})
	if len(owners) > limit {
		return owners[:limit]
	}
	return owners
}

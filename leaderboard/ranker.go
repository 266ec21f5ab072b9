package leaderboard

import (
	"sort"
)

// RankedEntry is a member's totals with its 1-based leaderboard rank.
type RankedEntry struct {
	Totals
	Rank int
}

// Rank orders totals by total calories descending, breaking ties by
// total distance descending, then total activities descending, then
// username ascending. Ranks are sequential 1..N: the persisted entry
// schema keeps one unique rank per row, so equal totals never share a
// rank.
func Rank(totals []Totals) []RankedEntry {
	ranked := make([]RankedEntry, len(totals))
	for i, t := range totals {
		ranked[i] = RankedEntry{Totals: t}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TotalCalories != b.TotalCalories {
			return a.TotalCalories > b.TotalCalories
		}
		if a.TotalDistance != b.TotalDistance {
			return a.TotalDistance > b.TotalDistance
		}
		if a.TotalActivities != b.TotalActivities {
			return a.TotalActivities > b.TotalActivities
		}
		return a.User.Username < b.User.Username
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

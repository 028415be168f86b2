// Package aggregate turns two snapshots into an owner leaderboard.
package aggregate

import (
	"cmp"
	"slices"

	"go.trai.ch/issueboard/internal/core/domain"
)

// Aggregate computes each owner's net counter change between before and after.
//
// For every puppet in watch-list order:
//   - absent from after: contributes 0
//   - absent from before: contributes its full after value
//   - otherwise: contributes after - before, which may be negative
//
// Every owner appears exactly once, including owners whose total is zero.
// The result is sorted by delta descending; equal deltas keep the order in
// which their owners first appear in the watch-list.
func Aggregate(wl *domain.WatchList, before, after domain.SnapshotCounts) domain.Leaderboard {
	owners := wl.Owners()
	totals := make(map[domain.CanonicalName]int64, len(owners))
	for _, owner := range owners {
		totals[owner] = 0
	}

	for _, a := range wl.Assignments() {
		totals[a.Owner] += Contribution(a.Puppet, before, after)
	}

	board := make(domain.Leaderboard, len(owners))
	for i, owner := range owners {
		board[i] = domain.Standing{Owner: owner, Delta: totals[owner]}
	}

	slices.SortStableFunc(board, func(a, b domain.Standing) int {
		return cmp.Compare(b.Delta, a.Delta)
	})

	return board
}

// Contribution returns what a single puppet adds to its owner's total.
func Contribution(puppet domain.CanonicalName, before, after domain.SnapshotCounts) int64 {
	end, ok := after[puppet]
	if !ok {
		return 0
	}
	start, ok := before[puppet]
	if !ok {
		return end
	}
	return end - start
}

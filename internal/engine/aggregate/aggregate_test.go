package aggregate_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/engine/aggregate"
)

func watchList(pairs ...string) *domain.WatchList {
	var as []domain.Assignment
	for i := 0; i+1 < len(pairs); i += 2 {
		as = append(as, domain.Assignment{
			Puppet: domain.CanonicalName(pairs[i]),
			Owner:  domain.CanonicalName(pairs[i+1]),
		})
	}
	return domain.NewWatchList(as...)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		wl     *domain.WatchList
		before domain.SnapshotCounts
		after  domain.SnapshotCounts
		want   domain.Leaderboard
	}{
		{
			name:   "puppet exists on start date",
			wl:     watchList("puppet 1", "owner 1"),
			before: domain.SnapshotCounts{"puppet 1": 1},
			after:  domain.SnapshotCounts{"puppet 1": 5},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: 4}},
		},
		{
			name:   "puppet new since start date",
			wl:     watchList("puppet 1", "owner 1"),
			before: domain.SnapshotCounts{},
			after:  domain.SnapshotCounts{"puppet 1": 5},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: 5}},
		},
		{
			name:   "puppet absent from both dates",
			wl:     watchList("puppet 1", "owner 1"),
			before: domain.SnapshotCounts{},
			after:  domain.SnapshotCounts{},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: 0}},
		},
		{
			name:   "puppet vanished before end date",
			wl:     watchList("puppet 1", "owner 1"),
			before: domain.SnapshotCounts{"puppet 1": 40},
			after:  domain.SnapshotCounts{},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: 0}},
		},
		{
			name:   "new puppet with zero issues",
			wl:     watchList("puppet 1", "owner 1"),
			before: nil,
			after:  domain.SnapshotCounts{"puppet 1": 0},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: 0}},
		},
		{
			name:   "counter reset gives negative delta",
			wl:     watchList("puppet 1", "owner 1"),
			before: domain.SnapshotCounts{"puppet 1": 10},
			after:  domain.SnapshotCounts{"puppet 1": 3},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: -7}},
		},
		{
			name:   "owner has many puppets",
			wl:     watchList("puppet 1", "owner 1", "puppet 2", "owner 1"),
			before: domain.SnapshotCounts{"puppet 1": 0, "puppet 2": 0},
			after:  domain.SnapshotCounts{"puppet 1": 10, "puppet 2": 5},
			want:   domain.Leaderboard{{Owner: "owner 1", Delta: 15}},
		},
		{
			name:   "sorted in descending order",
			wl:     watchList("puppet 1", "owner 2", "puppet 2", "owner 1"),
			before: domain.SnapshotCounts{"puppet 1": 0, "puppet 2": 0},
			after:  domain.SnapshotCounts{"puppet 1": 5, "puppet 2": 10},
			want: domain.Leaderboard{
				{Owner: "owner 1", Delta: 10},
				{Owner: "owner 2", Delta: 5},
			},
		},
		{
			name: "ties keep watch-list order",
			wl:   watchList("p1", "carol", "p2", "alice", "p3", "bob"),
			after: domain.SnapshotCounts{
				"p1": 2, "p2": 2, "p3": 2,
			},
			want: domain.Leaderboard{
				{Owner: "carol", Delta: 2},
				{Owner: "alice", Delta: 2},
				{Owner: "bob", Delta: 2},
			},
		},
		{
			name: "end to end example",
			wl:   watchList("puppet 1", "owner 1", "puppet 2", "owner 1", "puppet 3", "owner 2"),
			before: domain.SnapshotCounts{
				"puppet 1": 0, "puppet 2": 0,
			},
			after: domain.SnapshotCounts{
				"puppet 1": 10, "puppet 2": 5, "puppet 3": 3,
			},
			want: domain.Leaderboard{
				{Owner: "owner 1", Delta: 15},
				{Owner: "owner 2", Delta: 3},
			},
		},
		{
			name:   "three owners from an empty start snapshot",
			wl:     watchList("puppet 1", "owner 1", "puppet 2", "owner 2", "puppet 3", "owner 3"),
			before: domain.SnapshotCounts{},
			after:  domain.SnapshotCounts{"puppet 1": 1, "puppet 2": 2, "puppet 3": 3},
			want: domain.Leaderboard{
				{Owner: "owner 3", Delta: 3},
				{Owner: "owner 2", Delta: 2},
				{Owner: "owner 1", Delta: 1},
			},
		},
		{
			name: "empty watch-list",
			wl:   domain.NewWatchList(),
			want: domain.Leaderboard{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregate.Aggregate(tt.wl, tt.before, tt.after)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_EveryOwnerExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 50 {
		var pairs []domain.Assignment
		before := domain.SnapshotCounts{}
		after := domain.SnapshotCounts{}

		for p := range rng.IntN(30) {
			puppet := domain.CanonicalName(string(rune('a'+p%26)) + string(rune('0'+p/26)))
			owner := domain.CanonicalName(string(rune('A' + rng.IntN(6))))
			pairs = append(pairs, domain.Assignment{Puppet: puppet, Owner: owner})
			if rng.IntN(3) > 0 {
				before[puppet] = rng.Int64N(100)
			}
			if rng.IntN(3) > 0 {
				after[puppet] = rng.Int64N(200)
			}
		}

		wl := domain.NewWatchList(pairs...)
		board := aggregate.Aggregate(wl, before, after)

		assert.ElementsMatch(t, wl.Owners(), board.Owners())
		for i := 1; i < len(board); i++ {
			assert.GreaterOrEqual(t, board[i-1].Delta, board[i].Delta)
		}
	}
}

func TestAggregate_PuppetOrderDoesNotChangeTotals(t *testing.T) {
	before := domain.SnapshotCounts{"p1": 3, "p2": 1}
	after := domain.SnapshotCounts{"p1": 9, "p2": 4, "p3": 2}

	forward := aggregate.Aggregate(watchList("p1", "o", "p2", "o", "p3", "o"), before, after)
	reverse := aggregate.Aggregate(watchList("p3", "o", "p2", "o", "p1", "o"), before, after)

	assert.Equal(t, forward, reverse)
	assert.Equal(t, domain.Leaderboard{{Owner: "o", Delta: 11}}, forward)
}

func TestContribution(t *testing.T) {
	before := domain.SnapshotCounts{"both": 2, "gone": 5}
	after := domain.SnapshotCounts{"both": 7, "new": 4}

	assert.Equal(t, int64(5), aggregate.Contribution("both", before, after))
	assert.Equal(t, int64(4), aggregate.Contribution("new", before, after))
	assert.Equal(t, int64(0), aggregate.Contribution("gone", before, after))
	assert.Equal(t, int64(0), aggregate.Contribution("never", before, after))
}

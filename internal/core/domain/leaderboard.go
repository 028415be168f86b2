package domain

// Standing is one owner's net counter change over the window.
type Standing struct {
	Owner CanonicalName
	Delta int64
}

// Leaderboard is sorted by Delta descending.
// Owners with equal deltas keep their watch-list order.
type Leaderboard []Standing

// Owners returns the owners in leaderboard order.
func (l Leaderboard) Owners() []CanonicalName {
	out := make([]CanonicalName, len(l))
	for i, s := range l {
		out[i] = s.Owner
	}
	return out
}

package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Assignment binds a puppet to its owner.
type Assignment struct {
	Puppet CanonicalName
	Owner  CanonicalName
}

// WatchList maps puppets to their owners.
// Iteration order is the order in which each puppet was first added.
// A WatchList is immutable once built.
type WatchList struct {
	entries []Assignment
	index   map[CanonicalName]int
}

// NewWatchList builds a WatchList from puppet/owner pairs.
// A repeated puppet keeps its first position and takes the last owner.
func NewWatchList(pairs ...Assignment) *WatchList {
	b := NewWatchListBuilder()
	for _, p := range pairs {
		b.add(p.Puppet, p.Owner)
	}
	wl, _ := b.Build()
	return wl
}

// Len returns the number of puppets.
func (w *WatchList) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// Owner returns the owner of a puppet.
func (w *WatchList) Owner(puppet CanonicalName) (CanonicalName, bool) {
	if w == nil {
		return "", false
	}
	i, ok := w.index[puppet]
	if !ok {
		return "", false
	}
	return w.entries[i].Owner, true
}

// Assignments returns a copy of the puppet/owner pairs in iteration order.
func (w *WatchList) Assignments() []Assignment {
	if w == nil {
		return nil
	}
	out := make([]Assignment, len(w.entries))
	copy(out, w.entries)
	return out
}

// Owners returns each distinct owner once, in order of first appearance.
func (w *WatchList) Owners() []CanonicalName {
	if w == nil {
		return nil
	}
	seen := make(map[CanonicalName]struct{}, len(w.entries))
	var owners []CanonicalName
	for _, e := range w.entries {
		if _, ok := seen[e.Owner]; ok {
			continue
		}
		seen[e.Owner] = struct{}{}
		owners = append(owners, e.Owner)
	}
	return owners
}

// Names returns the set of puppets.
func (w *WatchList) Names() NameSet {
	if w == nil {
		return NameSet{}
	}
	s := make(NameSet, len(w.entries))
	for _, e := range w.entries {
		s[e.Puppet] = struct{}{}
	}
	return s
}

// WatchListBuilder assembles a WatchList from raw spreadsheet rows.
// Malformed rows are rejected one by one and never abort the build.
type WatchListBuilder struct {
	wl       *WatchList
	row      int
	rejected []error
}

// NewWatchListBuilder returns an empty builder.
func NewWatchListBuilder() *WatchListBuilder {
	return &WatchListBuilder{
		wl: &WatchList{index: make(map[CanonicalName]int)},
	}
}

// Add validates and records one row.
// Column 0 holds the puppet's display name and column 1 the owner's.
// Extra columns are ignored.
func (b *WatchListBuilder) Add(row []string) error {
	idx := b.row
	b.row++

	if len(row) < 2 {
		detail := zerr.With(zerr.New("row has fewer than two columns"), "row", idx)
		return b.reject(errors.Join(ErrMalformedRow, zerr.With(detail, "columns", len(row))))
	}

	puppet := strings.TrimSpace(row[0])
	owner := strings.TrimSpace(row[1])
	if puppet == "" || owner == "" {
		return b.reject(errors.Join(ErrMalformedRow, zerr.With(zerr.New("row has an empty name"), "row", idx)))
	}

	b.add(Canonical(puppet), Canonical(owner))
	return nil
}

func (b *WatchListBuilder) reject(err error) error {
	b.rejected = append(b.rejected, err)
	return err
}

func (b *WatchListBuilder) add(puppet, owner CanonicalName) {
	if i, ok := b.wl.index[puppet]; ok {
		b.wl.entries[i].Owner = owner
		return
	}
	b.wl.index[puppet] = len(b.wl.entries)
	b.wl.entries = append(b.wl.entries, Assignment{Puppet: puppet, Owner: owner})
}

// Build returns the assembled WatchList and the errors of every rejected row.
// The builder must not be used afterwards.
func (b *WatchListBuilder) Build() (*WatchList, []error) {
	wl := b.wl
	b.wl = nil
	return wl, b.rejected
}

package domain

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalName is the case-normalized identity of a nation.
// It is the join key between the watch-list and dump records.
type CanonicalName string

// Canonical lower-cases a raw nation name.
// Two raw names that differ only in case map to the same CanonicalName.
func Canonical(raw string) CanonicalName {
	if isASCII(raw) {
		return CanonicalName(strings.ToLower(raw))
	}
	// A Caser carries state, so every call gets its own.
	return CanonicalName(cases.Lower(language.Und).String(raw))
}

// String returns the canonical name as a plain string.
func (n CanonicalName) String() string {
	return string(n)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// NameSet is a set of canonical names.
type NameSet map[CanonicalName]struct{}

// NewNameSet builds a NameSet from the given names.
func NewNameSet(names ...CanonicalName) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name CanonicalName) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending order.
func (s NameSet) Sorted() []CanonicalName {
	out := make([]CanonicalName, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Fingerprint returns a stable hash of the set's members.
// Sets with the same members always share a fingerprint regardless of insertion order.
func (s NameSet) Fingerprint() string {
	h := xxhash.New()

	var count [8]byte
	binary.LittleEndian.PutUint64(count[:], uint64(len(s)))
	_, _ = h.Write(count[:])

	for _, n := range s.Sorted() {
		_, _ = h.WriteString(string(n))
		_, _ = h.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

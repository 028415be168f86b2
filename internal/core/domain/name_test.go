package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/issueboard/internal/core/domain"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.CanonicalName
	}{
		{name: "mixed case", raw: "Puppet 1", want: "puppet 1"},
		{name: "already canonical", raw: "puppet 1", want: "puppet 1"},
		{name: "upper case", raw: "TESTLANDIA", want: "testlandia"},
		{name: "underscores kept", raw: "The_Grand_Duchy", want: "the_grand_duchy"},
		{name: "non ascii", raw: "ÉIRE Ñ", want: "éire ñ"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Canonical(tt.raw))
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	inputs := []string{"Puppet 1", "puppet 1", "ΣΙΣΥΦΟΣ", "Straße", "MiXeD_Case 42", ""}

	for _, in := range inputs {
		once := domain.Canonical(in)
		twice := domain.Canonical(once.String())
		assert.Equal(t, once, twice, "canonicalizing %q twice changed the result", in)
	}
}

func TestCanonical_CaseInsensitiveJoin(t *testing.T) {
	assert.Equal(t, domain.Canonical("Puppet 1"), domain.Canonical("puppet 1"))
	assert.Equal(t, domain.CanonicalName("puppet 1"), domain.Canonical("PUPPET 1"))
}

func TestNameSet_Fingerprint(t *testing.T) {
	a := domain.NewNameSet("a", "b", "c")
	b := domain.NewNameSet("c", "a", "b")
	c := domain.NewNameSet("a", "b")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)
}

func TestNameSet_Contains(t *testing.T) {
	s := domain.NewNameSet("puppet 1")

	assert.True(t, s.Contains("puppet 1"))
	assert.False(t, s.Contains("Puppet 1"))
	assert.Equal(t, []domain.CanonicalName{"puppet 1"}, s.Sorted())
}

func TestSnapshotKey(t *testing.T) {
	const url = "https://example.com/2024-01-01.xml.gz"
	names := domain.NewNameSet("a", "b")
	key := domain.SnapshotKey(url, "2024-01-01", names)

	assert.Equal(t, key, domain.SnapshotKey(url, "2024-01-01", domain.NewNameSet("b", "a")))
	assert.NotEqual(t, key, domain.SnapshotKey(url, "2024-01-02", names))
	assert.NotEqual(t, key, domain.SnapshotKey(url, "2024-01-01", domain.NewNameSet("a")))
	assert.NotEqual(t, key, domain.SnapshotKey("https://mirror.example.org/2024-01-01.xml.gz", "2024-01-01", names))
}

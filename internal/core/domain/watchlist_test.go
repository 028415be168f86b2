package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/issueboard/internal/core/domain"
)

func TestWatchListBuilder_CanonicalizesRows(t *testing.T) {
	b := domain.NewWatchListBuilder()

	require.NoError(t, b.Add([]string{"Puppet 1", "Owner 1"}))
	require.NoError(t, b.Add([]string{"  Puppet 2 ", "OWNER 1", "ignored column"}))

	wl, rejected := b.Build()
	assert.Empty(t, rejected)
	assert.Equal(t, 2, wl.Len())

	owner, ok := wl.Owner("puppet 1")
	require.True(t, ok)
	assert.Equal(t, domain.CanonicalName("owner 1"), owner)

	owner, ok = wl.Owner("puppet 2")
	require.True(t, ok)
	assert.Equal(t, domain.CanonicalName("owner 1"), owner)
}

func TestWatchListBuilder_RejectsMalformedRows(t *testing.T) {
	b := domain.NewWatchListBuilder()

	require.NoError(t, b.Add([]string{"Puppet 1", "Owner 1"}))
	require.ErrorIs(t, b.Add([]string{"Lonely"}), domain.ErrMalformedRow)
	require.ErrorIs(t, b.Add(nil), domain.ErrMalformedRow)
	require.ErrorIs(t, b.Add([]string{"Puppet 3", "   "}), domain.ErrMalformedRow)
	require.NoError(t, b.Add([]string{"Puppet 4", "Owner 2"}))

	wl, rejected := b.Build()
	assert.Len(t, rejected, 3)
	for _, err := range rejected {
		assert.ErrorIs(t, err, domain.ErrMalformedRow)
	}
	assert.Equal(t, 2, wl.Len())
	assert.Equal(t, []domain.CanonicalName{"owner 1", "owner 2"}, wl.Owners())
}

func TestWatchListBuilder_Empty(t *testing.T) {
	wl, rejected := domain.NewWatchListBuilder().Build()

	assert.Empty(t, rejected)
	assert.Equal(t, 0, wl.Len())
	assert.Empty(t, wl.Owners())
	assert.Empty(t, wl.Names())
}

func TestWatchList_DuplicatePuppetKeepsPositionTakesLastOwner(t *testing.T) {
	wl := domain.NewWatchList(
		domain.Assignment{Puppet: "p1", Owner: "o1"},
		domain.Assignment{Puppet: "p2", Owner: "o2"},
		domain.Assignment{Puppet: "p1", Owner: "o3"},
	)

	assert.Equal(t, []domain.Assignment{
		{Puppet: "p1", Owner: "o3"},
		{Puppet: "p2", Owner: "o2"},
	}, wl.Assignments())
	assert.Equal(t, []domain.CanonicalName{"o3", "o2"}, wl.Owners())
}

func TestWatchList_OwnersFirstAppearanceOrder(t *testing.T) {
	wl := domain.NewWatchList(
		domain.Assignment{Puppet: "p1", Owner: "zed"},
		domain.Assignment{Puppet: "p2", Owner: "amy"},
		domain.Assignment{Puppet: "p3", Owner: "zed"},
	)

	assert.Equal(t, []domain.CanonicalName{"zed", "amy"}, wl.Owners())
	assert.Equal(t, domain.NewNameSet("p1", "p2", "p3"), wl.Names())
}

func TestWatchList_AssignmentsIsACopy(t *testing.T) {
	wl := domain.NewWatchList(domain.Assignment{Puppet: "p1", Owner: "o1"})

	got := wl.Assignments()
	got[0].Owner = "mutated"

	owner, _ := wl.Owner("p1")
	assert.Equal(t, domain.CanonicalName("o1"), owner)
}

func TestDumpSource(t *testing.T) {
	src := domain.DumpSource{URLTemplate: domain.DefaultDumpURL, Dir: "dumps"}

	assert.Equal(t, "https://www.nationstates.net/archive/nations/2024-01-01-nations-xml.gz", src.URL("2024-01-01"))
	assert.Equal(t, "dumps/2024-01-01-nations-xml.gz", src.Path("2024-01-01"))
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *domain.Config {
		return &domain.Config{
			General:     domain.GeneralConfig{StartDate: "2024-01-01", EndDate: "2024-01-31"},
			Spreadsheet: domain.SheetSource{SpreadsheetID: "s", Range: "r", CredentialsPath: "c"},
			Export:      domain.ExportConfig{Path: "o.json"},
		}
	}

	assert.NoError(t, valid().Validate())

	sameDay := valid()
	sameDay.General.EndDate = sameDay.General.StartDate
	assert.NoError(t, sameDay.Validate())

	backwards := valid()
	backwards.General.EndDate = "2023-12-31"
	assert.ErrorIs(t, backwards.Validate(), domain.ErrConfigInvalid)

	badDate := valid()
	badDate.General.StartDate = "2024-1-1"
	assert.ErrorIs(t, badDate.Validate(), domain.ErrConfigInvalid)

	missing := valid()
	missing.Export.Path = ""
	err := missing.Validate()
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "export.json_path")
}

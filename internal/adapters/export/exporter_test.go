package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/issueboard/internal/adapters/export"
	"go.trai.ch/issueboard/internal/core/domain"
)

var board = domain.Leaderboard{
	{Owner: "owner 1", Delta: 15},
	{Owner: "owner 2", Delta: 3},
	{Owner: "owner 3", Delta: 0},
	{Owner: "owner 4", Delta: -2},
}

func TestEncode_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ext   string
		board domain.Leaderboard
	}{
		{name: "leaderboard_json", ext: ".json", board: board},
		{name: "leaderboard_yaml", ext: ".yaml", board: board},
		{name: "empty_json", ext: ".json", board: domain.Leaderboard{}},
		{name: "special_json", ext: ".json", board: domain.Leaderboard{
			{Owner: `quote "q" & <tag>`, Delta: 1},
			{Owner: "ünïcödé", Delta: 2},
		}},
		{name: "special_yaml", ext: ".yml", board: domain.Leaderboard{
			{Owner: "123", Delta: 7},
			{Owner: "true", Delta: 5},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := export.Encode(tt.board, tt.ext)
			require.NoError(t, err)

			g := goldie.New(t, goldie.WithFixtureDir("testdata"))
			g.Assert(t, tt.name, data)
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := export.Encode(board, ".csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExport_WritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "leaderboard.json")
	require.NoError(t, export.New().Export(board, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := export.Encode(board, ".json")
	require.NoError(t, err)
	assert.Equal(t, want, data)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".export-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestExport_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leaderboard.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), domain.FilePerm))

	require.NoError(t, export.New().Export(domain.Leaderboard{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestExport_UnwritableDestination(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	err := export.New().Export(board, filepath.Join(blocker, "leaderboard.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}

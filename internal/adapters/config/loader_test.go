package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/issueboard/internal/adapters/config"
	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const validTOML = `
[general]
start_date = "2024-01-01"
end_date = "2024-02-01"
delete_dump_file_after_done = true

[puppet_spreadsheet]
spreadsheet_id = "sheet-123"
range = "Puppets!A2:B"
oauth_cred_path = "credentials.json"

[export]
json_path = "leaderboard.json"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoader_Load_TOML(t *testing.T) {
	t.Parallel()

	cfg, err := newLoader(t).Load(writeFile(t, "config.toml", validTOML))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", cfg.General.StartDate)
	assert.Equal(t, "2024-02-01", cfg.General.EndDate)
	assert.True(t, cfg.General.DeleteDumps)
	assert.Equal(t, "sheet-123", cfg.Spreadsheet.SpreadsheetID)
	assert.Equal(t, "Puppets!A2:B", cfg.Spreadsheet.Range)
	assert.Equal(t, "credentials.json", cfg.Spreadsheet.CredentialsPath)
	assert.Equal(t, "leaderboard.json", cfg.Export.Path)
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := newLoader(t).Load(writeFile(t, "config.toml", validTOML))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.General.DumpDir)
	assert.Equal(t, domain.DefaultDumpURL, cfg.General.DumpURL)
	assert.Contains(t, cfg.General.UserAgent, "issueboard/")
	assert.Equal(t, domain.DefaultTokenFile, cfg.Spreadsheet.TokenPath)
}

func TestLoader_Load_YAML(t *testing.T) {
	t.Parallel()

	content := `
general:
  start_date: "2024-03-01"
  end_date: "2024-03-08"
  dump_dir: dumps
puppet_spreadsheet:
  spreadsheet_id: abc
  range: Sheet1!A:B
  oauth_cred_path: creds.json
  token_path: tok.json
export:
  json_path: out.yaml
`
	cfg, err := newLoader(t).Load(writeFile(t, "config.yml", content))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", cfg.General.StartDate)
	assert.False(t, cfg.General.DeleteDumps)
	assert.Equal(t, "dumps", cfg.General.DumpDir)
	assert.Equal(t, "tok.json", cfg.Spreadsheet.TokenPath)
	assert.Equal(t, "out.yaml", cfg.Export.Path)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{
			name:    "invalid toml",
			file:    "config.toml",
			content: "[general\nstart_date = ",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:    "invalid yaml",
			file:    "config.yaml",
			content: "general: [unclosed",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown extension",
			file:    "config.ini",
			content: "x=1",
			want:    domain.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newLoader(t).Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_Load_LeavesValidationToCaller(t *testing.T) {
	t.Parallel()

	content := `
[puppet_spreadsheet]
spreadsheet_id = "s"
range = "r"
oauth_cred_path = "c"
`
	cfg, err := newLoader(t).Load(writeFile(t, "config.toml", content))
	require.NoError(t, err)

	assert.Empty(t, cfg.General.StartDate)
	assert.Empty(t, cfg.General.EndDate)
	assert.Empty(t, cfg.Export.Path)
	assert.Equal(t, domain.DefaultDumpURL, cfg.General.DumpURL)
	require.ErrorIs(t, cfg.Validate(), domain.ErrConfigInvalid)
}

func TestLoader_Load_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_WarnsWithoutDatePlaceholder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	content := `
[general]
start_date = "2024-01-01"
end_date = "2024-01-02"
dump_url = "https://example.com/fixed.xml.gz"
[puppet_spreadsheet]
spreadsheet_id = "s"
range = "r"
oauth_cred_path = "c"
[export]
json_path = "o.json"
`
	_, err := config.NewLoader(log).Load(writeFile(t, "config.toml", content))
	require.NoError(t, err)
}

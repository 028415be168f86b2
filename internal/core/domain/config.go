package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Config is the validated run configuration.
type Config struct {
	General     GeneralConfig
	Spreadsheet SheetSource
	Export      ExportConfig
}

// GeneralConfig holds the leaderboard window and dump handling options.
type GeneralConfig struct {
	StartDate   string
	EndDate     string
	DeleteDumps bool
	DumpDir     string
	DumpURL     string
	UserAgent   string
}

// SheetSource locates the watch-list spreadsheet and its credentials.
type SheetSource struct {
	SpreadsheetID   string
	Range           string
	CredentialsPath string
	TokenPath       string
}

// ExportConfig holds the leaderboard destination.
type ExportConfig struct {
	Path string
}

// DumpSource tells a fetcher where a dump lives and where to keep it.
type DumpSource struct {
	URLTemplate string
	Dir         string
	UserAgent   string
}

// Validate checks the fields a run cannot do without.
// Dates must use DateLayout and the window must not run backwards.
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"general.start_date", c.General.StartDate},
		{"general.end_date", c.General.EndDate},
		{"puppet_spreadsheet.spreadsheet_id", c.Spreadsheet.SpreadsheetID},
		{"puppet_spreadsheet.range", c.Spreadsheet.Range},
		{"puppet_spreadsheet.oauth_cred_path", c.Spreadsheet.CredentialsPath},
		{"export.json_path", c.Export.Path},
	}
	for _, r := range required {
		if r.value == "" {
			return invalidField(r.field, "is required")
		}
	}

	start, err := time.Parse(DateLayout, c.General.StartDate)
	if err != nil {
		return invalidField("general.start_date", "must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(DateLayout, c.General.EndDate)
	if err != nil {
		return invalidField("general.end_date", "must be a YYYY-MM-DD date")
	}
	if end.Before(start) {
		return invalidField("general.end_date", "must not be before general.start_date")
	}
	return nil
}

func invalidField(field, reason string) error {
	return errors.Join(ErrConfigInvalid, zerr.With(zerr.New(field+" "+reason), "field", field))
}

// DumpSource returns the dump settings of the general section.
func (g GeneralConfig) DumpSource() DumpSource {
	return DumpSource{
		URLTemplate: g.DumpURL,
		Dir:         g.DumpDir,
		UserAgent:   g.UserAgent,
	}
}

// URL returns the download URL of the dump for date.
func (s DumpSource) URL(date string) string {
	return strings.ReplaceAll(s.URLTemplate, "{date}", date)
}

// Path returns the local path of the dump for date.
func (s DumpSource) Path(date string) string {
	return filepath.Join(s.Dir, DumpFileName(date))
}

// DumpFileName returns the file name of the dump for date.
func DumpFileName(date string) string {
	return strings.ReplaceAll(DumpFileTemplate, "{date}", date)
}

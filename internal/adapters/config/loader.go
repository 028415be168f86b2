// Package config provides the configuration loader for issueboard.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/issueboard/internal/build"
	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for TOML and YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and decodes the configuration file at path and fills in defaults.
// Required fields are left for the caller to check with Config.Validate once
// command line overrides are applied.
// The format is chosen by extension: .toml, .yaml or .yml.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.Wrap(err, "config file missing"), "path", path))
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read"), "path", path))
	}

	file, err := decode(path, data)
	if err != nil {
		return nil, err
	}

	return l.build(file)
}

func decode(path string, data []byte) (*File, error) {
	var file File

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid TOML"), "path", path))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid YAML"), "path", path))
		}
	default:
		return nil, errors.Join(domain.ErrUnsupportedFormat, zerr.With(zerr.New("unknown config extension"), "extension", ext))
	}

	return &file, nil
}

// build applies defaults to the decoded file.
func (l *Loader) build(file *File) (*domain.Config, error) {
	cfg := &domain.Config{
		General: domain.GeneralConfig{
			StartDate:   strings.TrimSpace(file.General.StartDate),
			EndDate:     strings.TrimSpace(file.General.EndDate),
			DeleteDumps: file.General.DeleteDumps,
			DumpDir:     withDefault(file.General.DumpDir, "."),
			DumpURL:     withDefault(file.General.DumpURL, domain.DefaultDumpURL),
			UserAgent:   withDefault(file.General.UserAgent, "issueboard/"+build.Version),
		},
		Spreadsheet: domain.SheetSource{
			SpreadsheetID:   strings.TrimSpace(file.Spreadsheet.SpreadsheetID),
			Range:           strings.TrimSpace(file.Spreadsheet.Range),
			CredentialsPath: strings.TrimSpace(file.Spreadsheet.CredPath),
			TokenPath:       withDefault(file.Spreadsheet.TokenPath, domain.DefaultTokenFile),
		},
		Export: domain.ExportConfig{
			Path: strings.TrimSpace(file.Export.JSONPath),
		},
	}

	if !strings.Contains(cfg.General.DumpURL, "{date}") && l.Logger != nil {
		l.Logger.Warn("dump_url has no {date} placeholder; both dates will download the same file")
	}

	return cfg, nil
}

func withDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

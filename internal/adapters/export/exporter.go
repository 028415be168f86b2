// Package export writes leaderboards to disk.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Exporter = (*Exporter)(nil)

// Exporter writes a leaderboard as an owner to delta mapping, keeping
// leaderboard order. The format is chosen by file extension.
type Exporter struct{}

// New creates an Exporter.
func New() *Exporter {
	return &Exporter{}
}

// Export encodes board and atomically replaces the file at path.
func (e *Exporter) Export(board domain.Leaderboard, path string) error {
	data, err := Encode(board, filepath.Ext(path))
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// Encode renders board in the format named by ext (".json", ".yaml" or ".yml").
func Encode(board domain.Leaderboard, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return encodeJSON(board)
	case ".yaml", ".yml":
		return encodeYAML(board)
	default:
		return nil, errors.Join(domain.ErrUnsupportedFormat,
			zerr.With(zerr.New("unknown export extension"), "extension", ext))
	}
}

func encodeJSON(board domain.Leaderboard) ([]byte, error) {
	doc := orderedmap.New()
	doc.SetEscapeHTML(false)
	for _, s := range board {
		doc.Set(s.Owner.String(), s.Delta)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to encode JSON"))
	}
	return buf.Bytes(), nil
}

func encodeYAML(board domain.Leaderboard) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, s := range board {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Owner.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(s.Delta, 10)},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to encode YAML"))
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to flush YAML"))
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrExportFailed, zerr.With(zerr.Wrap(err, "failed to create export directory"), "path", dir))
	}

	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to create temp file"))
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to write leaderboard"))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to close leaderboard"))
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "failed to set leaderboard permissions"))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Join(domain.ErrExportFailed, zerr.With(zerr.Wrap(err, "failed to write leaderboard"), "path", path))
	}
	return nil
}

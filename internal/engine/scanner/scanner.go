// Package scanner extracts the issue counters of watched nations from a nation dump.
package scanner

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
)

var _ ports.DumpScanner = (*Scanner)(nil)

// maxReportedAnomalies bounds how many skipped records are logged individually.
const maxReportedAnomalies = 20

// scanStats summarizes one scan.
type scanStats struct {
	Records int
	Matched int
	Skipped int
}

// Scanner streams a nation dump and keeps the counters of watched nations.
type Scanner struct {
	logger ports.Logger
}

// New creates a Scanner reporting skipped records to logger.
func New(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// ScanArchive inflates a gzip-compressed dump and scans it.
func (s *Scanner) ScanArchive(
	ctx context.Context,
	r io.Reader,
	names domain.NameSet,
) (domain.SnapshotCounts, error) {
	gz, err := gzip.NewReader(&contextReader{ctx: ctx, r: r})
	if err != nil {
		return nil, errors.Join(domain.ErrDumpUnreadable, zerr.Wrap(err, "failed to open gzip stream"))
	}
	defer gz.Close() //nolint:errcheck // Read errors are reported by Scan

	return s.Scan(ctx, gz, names)
}

// Scan reads an uncompressed dump and returns the counter of every record whose
// name is in names. Records with a missing name or an unreadable counter are
// skipped and logged. Any stream error fails the whole scan; partial counts are
// never returned.
func (s *Scanner) Scan(
	ctx context.Context,
	r io.Reader,
	names domain.NameSet,
) (domain.SnapshotCounts, error) {
	dec := xml.NewDecoder(&contextReader{ctx: ctx, r: r})
	dec.CharsetReader = charset.NewReaderLabel

	counts := make(domain.SnapshotCounts, len(names))
	var stats scanStats

	for rec, err := range records(dec) {
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, errors.Join(domain.ErrDumpUnreadable, ctxErr)
			}
			return nil, errors.Join(
				domain.ErrDumpUnreadable,
				zerr.With(zerr.Wrap(err, "failed to decode dump"), "offset", dec.InputOffset()),
			)
		}

		stats.Records++

		if !rec.hasName || strings.TrimSpace(rec.name) == "" {
			s.skip(&stats, rec.offset, "record has no name")
			continue
		}

		name := domain.Canonical(strings.TrimSpace(rec.name))
		if !names.Contains(name) {
			continue
		}

		n, err := parseCounter(rec)
		if err != nil {
			s.skip(&stats, rec.offset, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		if _, seen := counts[name]; !seen {
			stats.Matched++
		}
		counts[name] = n
	}

	if stats.Skipped > maxReportedAnomalies {
		s.logger.Warn(fmt.Sprintf("%d further malformed records were skipped", stats.Skipped-maxReportedAnomalies))
	}
	s.logger.Info(fmt.Sprintf(
		"scanned %d records: %d watched nations found, %d skipped",
		stats.Records, stats.Matched, stats.Skipped,
	))

	return counts, nil
}

func (s *Scanner) skip(stats *scanStats, offset int64, reason string) {
	stats.Skipped++
	if stats.Skipped > maxReportedAnomalies {
		return
	}
	s.logger.Warn(fmt.Sprintf("%s at offset %d: %s", domain.ErrMalformedRecord.Error(), offset, reason))
}

func parseCounter(rec record) (int64, error) {
	if !rec.hasCounter {
		return 0, zerr.New("missing " + counterTag)
	}
	raw := strings.TrimSpace(string(rec.counter))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid "+counterTag), "value", raw)
	}
	if n < 0 {
		return 0, zerr.With(zerr.New("negative "+counterTag), "value", raw)
	}
	return n, nil
}

// contextReader fails reads once its context is done, so a cancelled scan
// stops at the next read instead of running to the end of the dump.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

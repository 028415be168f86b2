package ports

import (
	"context"
	"io"

	"go.trai.ch/issueboard/internal/core/domain"
)

// DumpScanner extracts the counters of watched nations from a dump.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type DumpScanner interface {
	// ScanArchive reads a gzip-compressed dump from r.
	ScanArchive(ctx context.Context, r io.Reader, names domain.NameSet) (domain.SnapshotCounts, error)
}

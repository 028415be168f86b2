package ports

import (
	"context"

	"go.trai.ch/issueboard/internal/core/domain"
)

// DumpFetcher makes nation dumps available on local disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=dump.go -destination=mocks/mock_dump.go -package=mocks
type DumpFetcher interface {
	// Fetch ensures the dump for date exists locally and returns its path.
	// Download failures are reported as domain.ErrRetrievalFailed.
	Fetch(ctx context.Context, src domain.DumpSource, date string) (string, error)

	// Remove deletes a previously fetched dump.
	Remove(path string) error
}

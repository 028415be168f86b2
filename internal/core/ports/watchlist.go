// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/issueboard/internal/core/domain"
)

// WatchListProvider supplies the current puppet to owner mapping.
//
// Implementations own authorization. The core never sees tokens or
// credentials, only an already-authorized source.
//
//go:generate go run go.uber.org/mock/mockgen -source=watchlist.go -destination=mocks/mock_watchlist.go -package=mocks
type WatchListProvider interface {
	// WatchList returns the watch-list held by the spreadsheet described by src.
	// A spreadsheet without rows yields an empty watch-list, not an error.
	WatchList(ctx context.Context, src domain.SheetSource) (*domain.WatchList, error)
}

package ports

import "go.trai.ch/issueboard/internal/core/domain"

// SnapshotStore defines the interface for caching scan results.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot stored under key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.Snapshot, error)

	// Put stores the snapshot under key.
	Put(key string, snap domain.Snapshot) error
}

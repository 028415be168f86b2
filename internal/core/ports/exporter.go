package ports

import "go.trai.ch/issueboard/internal/core/domain"

// Exporter writes a leaderboard to its destination.
//
//go:generate go run go.uber.org/mock/mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type Exporter interface {
	// Export writes board to path as an ordered owner to delta document.
	Export(board domain.Leaderboard, path string) error
}

package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of pipeline steps.
type Telemetry interface {
	// Record starts a new vertex for the named step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded step.
type Vertex interface {
	// Complete marks the step as finished, successfully if err is nil.
	Complete(err error)
	// Cached marks the step as served from cache.
	Cached()
}

package progrock

import (
	"sync"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	once   sync.Once
}

// Complete marks the vertex as finished (successfully or with an error).
// Only the first call is recorded.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() { v.vertex.Done(err) })
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

package progrock

import (
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/issueboard/internal/core/ports"
	"google.golang.org/protobuf/proto"
)

var _ progrock.Writer = (*StatusLog)(nil)

// StatusLog is a progrock.Writer that folds vertex updates by ID and reports
// each vertex through the logger once it completes.
type StatusLog struct {
	logger ports.Logger

	mu       sync.Mutex
	order    []string
	vertices map[string]*progrock.Vertex
}

// NewStatusLog creates a StatusLog reporting to logger.
func NewStatusLog(logger ports.Logger) *StatusLog {
	return &StatusLog{
		logger:   logger,
		vertices: make(map[string]*progrock.Vertex),
	}
}

// WriteStatus applies the vertex updates in update. Other update kinds are ignored.
func (s *StatusLog) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.GetVertexes() {
		prev, seen := s.vertices[v.GetId()]
		if !seen {
			s.order = append(s.order, v.GetId())
		}
		next := proto.Clone(v).(*progrock.Vertex) //nolint:forcetypeassert // Clone keeps the message type
		s.vertices[v.GetId()] = next

		if next.GetCompleted() != nil && (prev == nil || prev.GetCompleted() == nil) {
			s.report(next)
		}
	}
	return nil
}

func (s *StatusLog) report(v *progrock.Vertex) {
	switch {
	case v.Error != nil:
		s.logger.Warn(fmt.Sprintf("%s failed: %s", v.GetName(), v.GetError()))
	case v.GetCached():
		s.logger.Info(v.GetName() + " cached")
	default:
		s.logger.Info(fmt.Sprintf("%s done in %s", v.GetName(), elapsed(v)))
	}
}

// Close logs a summary of the completed vertices.
func (s *StatusLog) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var completed, cached, failed int
	var first, last time.Time
	for _, id := range s.order {
		v := s.vertices[id]
		if v.GetCompleted() == nil {
			continue
		}
		completed++
		if v.GetCached() {
			cached++
		}
		if v.Error != nil {
			failed++
		}
		if start := v.GetStarted().AsTime(); v.GetStarted() != nil && (first.IsZero() || start.Before(first)) {
			first = start
		}
		if end := v.GetCompleted().AsTime(); end.After(last) {
			last = end
		}
	}
	if completed == 0 {
		return nil
	}

	var span time.Duration
	if !first.IsZero() && last.After(first) {
		span = last.Sub(first)
	}
	s.logger.Info(fmt.Sprintf("%d steps finished (%d cached, %d failed) in %s",
		completed, cached, failed, span.Round(time.Millisecond)))
	return nil
}

func elapsed(v *progrock.Vertex) time.Duration {
	if v.GetStarted() == nil || v.GetCompleted() == nil {
		return 0
	}
	return v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).Round(time.Millisecond)
}

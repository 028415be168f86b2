package dump

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/issueboard/internal/adapters/logger"
	"go.trai.ch/issueboard/internal/core/ports"
)

// NodeID is the unique identifier for the dump fetcher Graft node.
const NodeID graft.ID = "adapter.dump"

func init() {
	graft.Register(graft.Node[ports.DumpFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DumpFetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log, nil), nil
		},
	})
}

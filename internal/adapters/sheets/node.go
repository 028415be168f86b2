package sheets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/issueboard/internal/adapters/logger"
	"go.trai.ch/issueboard/internal/core/ports"
)

// NodeID is the unique identifier for the spreadsheet provider Graft node.
const NodeID graft.ID = "adapter.sheets"

func init() {
	graft.Register(graft.Node[ports.WatchListProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatchListProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/issueboard/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/adapters/dump"               //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/adapters/export"             //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/adapters/sheets"             //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/issueboard/internal/engine/scanner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sheets.NodeID,
			dump.NodeID,
			scanner.NodeID,
			cas.NodeID,
			export.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[ports.WatchListProvider](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.DumpFetcher](ctx)
	if err != nil {
		return nil, err
	}

	scan, err := graft.Dep[ports.DumpScanner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.Exporter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, provider, fetcher, scan, store, exporter, telemetry, log), nil
}

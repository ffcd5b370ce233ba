package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cssmerge/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cssmerge/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/cssmerge/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cssmerge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"go.trai.ch/cssmerge/internal/engine/fetcher"
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
			config.TogglesNodeID,
			fetcher.NodeID,
			fs.FileSinkNodeID,
			fs.PreviewSinkNodeID,
			logger.NodeID,
			progrock.NodeID,
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	toggles, err := graft.Dep[domain.Toggles](ctx)
	if err != nil {
		return nil, err
	}

	f, err := graft.Dep[*fetcher.Fetcher](ctx)
	if err != nil {
		return nil, err
	}

	fileSink, err := graft.Dep[*fs.FileSink](ctx)
	if err != nil {
		return nil, err
	}

	previewSink, err := graft.Dep[*fs.PreviewSink](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, f, fileSink, previewSink, log, telemetry, toggles), nil
}

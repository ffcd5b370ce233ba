package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cssmerge/internal/adapters/logger"
	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the manifest loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// TogglesNodeID is the unique identifier for the environment toggles Graft node.
	TogglesNodeID graft.ID = "adapter.config_toggles"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[domain.Toggles]{
		ID:        TogglesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Toggles, error) {
			return LoadToggles(), nil
		},
	})
}

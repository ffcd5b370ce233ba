package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cssmerge/internal/adapters/httpclient"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cssmerge/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cssmerge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cssmerge/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the fetcher Graft node.
	NodeID graft.ID = "engine.fetcher"
	// CacheNodeID is the unique identifier for the process-wide fetch cache node.
	CacheNodeID graft.ID = "engine.fetcher.cache"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return NewCache(), nil
		},
	})

	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			httpclient.NodeID,
			logger.NodeID,
			progrock.NodeID,
			CacheNodeID,
		},
		Run: func(ctx context.Context) (*Fetcher, error) {
			transport, err := graft.Dep[ports.Transport](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}

			return New(transport, cache, log, tel), nil
		},
	})
}

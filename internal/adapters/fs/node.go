package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cssmerge/internal/adapters/logger"
	"go.trai.ch/cssmerge/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// FileSinkNodeID is the unique identifier for the file sink Graft node.
	FileSinkNodeID graft.ID = "adapter.fs.file_sink"
	// PreviewSinkNodeID is the unique identifier for the dry-run sink Graft node.
	PreviewSinkNodeID graft.ID = "adapter.fs.preview_sink"
)

func init() {
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[*FileSink]{
		ID:        FileSinkNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, HasherNodeID},
		Run: func(ctx context.Context) (*FileSink, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSink(log, hasher), nil
		},
	})

	graft.Register(graft.Node[*PreviewSink]{
		ID:        PreviewSinkNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*PreviewSink, error) {
			return NewPreviewSink(), nil
		},
	})
}

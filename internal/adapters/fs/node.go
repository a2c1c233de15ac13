package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylegen/internal/adapters/logger"
	"go.trai.ch/stylegen/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	WriterNodeID   graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.AssetScanner]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetScanner, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.RootResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RootResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.OutputWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}

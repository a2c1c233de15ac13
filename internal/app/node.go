package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylegen/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/stylegen/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/stylegen/internal/adapters/imaging" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylegen/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/stylegen/internal/core/ports"
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
			fs.ResolverNodeID,
			config.NodeID,
			fs.WalkerNodeID,
			imaging.NodeID,
			fs.WriterNodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.RootResolver](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.AssetScanner](ctx)
	if err != nil {
		return nil, err
	}

	sampler, err := graft.Dep[ports.ImageSampler](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, loader, scanner, sampler, writer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}

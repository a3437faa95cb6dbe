package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/maven3/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/maven3/internal/engine/cmdline"
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
			shell.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			cmdline.NodeID,
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
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*shell.Runner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.InvocationStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	cmds, err := graft.Dep[*cmdline.Builder](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, runner, store, hasher, log, tracer, cmds), nil
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

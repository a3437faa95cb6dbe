package cmdline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/maven3/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/maven3/internal/engine/buildinfo"
)

// NodeID is the unique identifier for the command-line builder Graft node.
const NodeID graft.ID = "engine.cmdline"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, buildinfo.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			injector, err := graft.Dep[*buildinfo.Injector](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(fsys, injector), nil
		},
	})
}

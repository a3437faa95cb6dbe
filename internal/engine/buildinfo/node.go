package buildinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/maven3/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/maven3/internal/core/ports"
)

// NodeID is the unique identifier for the build-info injector Graft node.
const NodeID graft.ID = "engine.buildinfo"

func init() {
	graft.Register(graft.Node[*Injector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Injector, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewInjector(fsys), nil
		},
	})
}

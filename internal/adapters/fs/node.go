package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/maven3/internal/core/ports"
)

const (
	LocatorNodeID graft.ID = "adapter.fs.locator"
	NodeID        graft.ID = "adapter.fs"
	HasherNodeID  graft.ID = "adapter.fs.hasher"
)

func init() {
	// Locator Node (Concrete implementation needed by Hasher)
	graft.Register(graft.Node[*Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Locator, error) {
			return NewLocator(), nil
		},
	})

	// FileSystem Node
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LocatorNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			locator, err := graft.Dep[*Locator](ctx)
			if err != nil {
				return nil, err
			}
			return locator, nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LocatorNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			locator, err := graft.Dep[*Locator](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(locator), nil
		},
	})
}

package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/maven3/internal/core/ports"
)

const NodeID graft.ID = "adapter.invocation_store"

func init() {
	graft.Register(graft.Node[ports.InvocationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.InvocationStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}

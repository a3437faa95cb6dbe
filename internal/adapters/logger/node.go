package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/maven3/internal/core/ports"
)

const (
	NodeID         graft.ID = "adapter.logger"
	ConcreteNodeID graft.ID = "adapter.logger.slog"
)

func init() {
	// Concrete logger, needed by the CLI to switch the output format.
	graft.Register(graft.Node[*Logger]{
		ID:        ConcreteNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConcreteNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}

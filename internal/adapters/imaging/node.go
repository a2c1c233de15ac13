package imaging

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylegen/internal/core/ports"
)

const NodeID graft.ID = "adapter.imaging.sampler"

func init() {
	graft.Register(graft.Node[ports.ImageSampler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageSampler, error) {
			return NewSampler(), nil
		},
	})
}

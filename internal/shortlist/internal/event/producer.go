package event

import (
	"context"

	"github.com/ajirahub/ajirahub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type ShortlistGeneratedProducer interface {
	Produce(ctx context.Context, evt ShortlistGeneratedEvent) error
}

func NewShortlistGeneratedProducer(q mq.MQ) (ShortlistGeneratedProducer, error) {
	return mqx.NewGeneralProducer[ShortlistGeneratedEvent](q, ShortlistGeneratedEventName)
}

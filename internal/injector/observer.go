package injector

import (
	"time"

	"github.com/zeusync/gameai/internal/core/events/bus"
	"github.com/zeusync/gameai/internal/core/observability/log"
)

// deliveryObserver logs every bus delivery; failed ones at warn level.
type deliveryObserver struct {
	logger log.Log
}

var _ bus.EventBusObserver = (*deliveryObserver)(nil)

func newDeliveryObserver(logger log.Log) *deliveryObserver {
	return &deliveryObserver{logger: logger}
}

func (o *deliveryObserver) OnPublish(string, bus.Event) {}

func (o *deliveryObserver) OnDelivered(eventType string, handlers int, err error, duration time.Duration) {
	fields := []log.Field{
		log.String("event", eventType),
		log.Int("handlers", handlers),
		log.Duration("elapsed", duration),
	}
	if err != nil {
		o.logger.Warn("event delivery failed", append(fields, log.Error(err))...)
		return
	}
	o.logger.Debug("event delivered", fields...)
}

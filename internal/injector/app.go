package injector

import (
	"github.com/zeusync/gameai/internal/config"
	"github.com/zeusync/gameai/internal/core/agent"
	"github.com/zeusync/gameai/internal/core/events/bus"
	"github.com/zeusync/gameai/internal/core/observability/log"
	"github.com/zeusync/gameai/internal/monitor"
)

// App holds the long-lived components of the doorbreaker command.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Bus    bus.EventBus
	Driver *agent.Driver
	Hub    *monitor.Hub
}

func ProvideLogger(cfg *config.Config) (*log.Logger, func()) {
	logger := log.New(cfg.Level())
	return logger, func() { _ = logger.Sync() }
}

// ProvideEventBus builds the bus with a delivery observer attached. The
// cleanup detaches it and logs the bus counters.
func ProvideEventBus(logger log.Log) (bus.EventBus, func()) {
	events := bus.New()
	obs := newDeliveryObserver(logger.With(log.String("component", "bus")))
	events.AddObserver(obs)
	return events, func() {
		events.RemoveObserver(obs)
		m := events.GetMetrics()
		logger.Info("event bus stopped",
			log.Uint64("published", m.Published),
			log.Uint64("delivered", m.DeliveredHandlers),
			log.Uint64("errors", m.Errors),
			log.Uint64("subscribers", m.SubscribersActive),
		)
	}
}

func ProvideDriver(cfg *config.Config, logger log.Log, events bus.EventBus) *agent.Driver {
	d := agent.NewDriver(logger.With(log.String("component", "driver")), events)
	d.SetParallelism(cfg.Parallelism)
	return d
}

func ProvideHub(logger log.Log, events bus.EventBus) (*monitor.Hub, func(), error) {
	hub, err := monitor.NewHub(logger.With(log.String("component", "monitor")), events)
	if err != nil {
		return nil, nil, err
	}
	return hub, func() {
		if err := hub.Close(); err != nil {
			logger.Warn("monitor close failed", log.Error(err))
		}
	}, nil
}

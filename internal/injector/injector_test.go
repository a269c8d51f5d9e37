package injector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/gameai/internal/config"
	"github.com/zeusync/gameai/internal/core/agent"
	"github.com/zeusync/gameai/internal/core/bt"
	"github.com/zeusync/gameai/internal/core/events/bus"
	"github.com/zeusync/gameai/internal/core/observability/log"
)

func TestInitializeApp(t *testing.T) {
	cfg := config.Default()
	app, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Same(t, cfg, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Bus)
	require.NotNil(t, app.Driver)
	require.NotNil(t, app.Hub)

	var got []agent.Report
	_, err = app.Bus.Subscribe(agent.EventTick, func(e bus.Event) error {
		got = append(got, e.Data().(agent.Report))
		return nil
	})
	require.NoError(t, err)

	_, err = app.Driver.Add("idle", bt.NewLeafTask(func() bt.TaskResult { return bt.Success }))
	require.NoError(t, err)
	_, err = app.Driver.Tick(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "idle", got[0].Agent)
	assert.Equal(t, 0, app.Hub.Clients())
}

func TestProvideEventBusLogsDeliveries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	events, cleanup := ProvideEventBus(log.NewWithCore(core, log.LevelDebug))

	down := errors.New("listener down")
	_, err := events.Subscribe("broken", func(bus.Event) error { return down })
	require.NoError(t, err)
	_, err = events.Subscribe("fine", func(bus.Event) error { return nil })
	require.NoError(t, err)

	require.ErrorIs(t, events.Publish(bus.NewEvent("broken", "test", nil)), down)
	require.NoError(t, events.Publish(bus.NewEvent("fine", "test", nil)))

	failed := logs.FilterMessage("event delivery failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "broken", failed[0].ContextMap()["event"])
	assert.Equal(t, 1, logs.FilterMessage("event delivered").Len())

	cleanup()
	stopped := logs.FilterMessage("event bus stopped").All()
	require.Len(t, stopped, 1)
	assert.EqualValues(t, 2, stopped[0].ContextMap()["published"])
	assert.EqualValues(t, 1, stopped[0].ContextMap()["errors"])

	require.NoError(t, events.Publish(bus.NewEvent("fine", "test", nil)))
	assert.Equal(t, 1, logs.FilterMessage("event delivered").Len())
}

func TestInitializeAppAppliesParallelism(t *testing.T) {
	cfg := config.Default()
	cfg.Parallelism = 1
	app, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err = app.Driver.Add("alarm", bt.NewLeafTask(func() bt.TaskResult {
		cancel()
		return bt.Success
	}))
	require.NoError(t, err)
	late, err := app.Driver.Add("late", bt.NewLeafTask(func() bt.TaskResult { return bt.Success }))
	require.NoError(t, err)

	_, err = app.Driver.Tick(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), late.Ticks())
}

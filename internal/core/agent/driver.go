package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zeusync/gameai/internal/core/bt"
	"github.com/zeusync/gameai/internal/core/events/bus"
	"github.com/zeusync/gameai/internal/core/observability/log"
	"github.com/zeusync/gameai/pkg/concurrent"
	"github.com/zeusync/gameai/pkg/sequence"
)

var (
	ErrNilRoot        = errors.New("agent: behavior tree root is nil")
	ErrEmptyName      = errors.New("agent: name is empty")
	ErrDuplicateAgent = errors.New("agent: duplicate agent name")
)

// Driver runs the trees of its agents once per tick. Agents are ticked in
// parallel, but each tree is only ever run by one goroutine at a time.
type Driver struct {
	logger log.Log
	events bus.EventBus

	// tickMu serialises ticks and guards parallelism.
	tickMu      sync.Mutex
	parallelism int

	mu     sync.RWMutex
	agents []*Agent
	byName map[string]*Agent
}

// NewDriver creates a driver. events may be nil when nobody listens.
func NewDriver(logger log.Log, events bus.EventBus) *Driver {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Driver{
		logger: logger,
		events: events,
		byName: make(map[string]*Agent),
	}
}

// Add registers a tree under a unique agent name.
func (d *Driver) Add(name string, root bt.Task) (*Agent, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilRoot, name)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAgent, name)
	}
	a := newAgent(name, root)
	d.agents = append(d.agents, a)
	d.byName[name] = a
	d.logger.Info("agent added", log.String("agent", name), log.String("id", a.ID().String()))
	return a, nil
}

// Agent looks an agent up by name.
func (d *Driver) Agent(name string) (*Agent, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.byName[name]
	return a, ok
}

// Agents returns the agents in the order they were added.
func (d *Driver) Agents() []*Agent {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*Agent(nil), d.agents...)
}

// SetParallelism caps how many trees are run at the same time during a tick.
// Zero or less means one goroutine per agent.
func (d *Driver) SetParallelism(n int) {
	d.tickMu.Lock()
	d.parallelism = n
	d.tickMu.Unlock()
}

// Tick runs every agent's tree once and returns one report per agent, in the
// order the agents were added. Reports are also published on the event bus;
// a failing bus handler is returned as an error but does not affect the
// trees. Cancelling ctx during a tick skips the agents not yet run and
// returns ctx.Err() without reports.
func (d *Driver) Tick(ctx context.Context) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.tickMu.Lock()
	defer d.tickMu.Unlock()

	agents := d.Agents()
	reports := make([]Report, len(agents))
	index := make(map[*Agent]int, len(agents))
	for i, a := range agents {
		index[a] = i
	}

	err := concurrent.ConcurrentContext(ctx, sequence.From(agents), d.parallelism, func(ctx context.Context, a *Agent) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		result := a.tick()
		reports[index[a]] = Report{
			AgentID:   a.ID(),
			Agent:     a.Name(),
			Tick:      a.Ticks(),
			Result:    result,
			Status:    result.String(),
			Elapsed:   time.Since(start),
			Timestamp: start,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := make([]bus.Event, 0, len(reports))
	for _, r := range reports {
		d.logger.Debug("agent ticked",
			log.String("agent", r.Agent),
			log.Uint64("tick", r.Tick),
			log.Stringer("result", r.Result),
			log.Duration("elapsed", r.Elapsed),
		)
		events = append(events, TickEvent{Report: r})
	}
	if d.events == nil {
		return reports, nil
	}
	if err := d.events.PublishBatch(events...); err != nil {
		d.logger.Warn("tick report delivery failed", log.Error(err))
		return reports, fmt.Errorf("publish tick reports: %w", err)
	}
	return reports, nil
}

// RunOptions controls Run.
type RunOptions struct {
	// Ticks is the maximum number of ticks; zero means until cancelled or
	// settled.
	Ticks int
	// Interval is the pause between two ticks.
	Interval time.Duration
	// StopWhenSettled ends the run once no agent returned Running.
	StopWhenSettled bool
}

// Run ticks the agents repeatedly and returns the number of ticks executed.
// Cancelling ctx stops the run between two ticks and returns ctx.Err().
func (d *Driver) Run(ctx context.Context, opts RunOptions) (int, error) {
	if opts.Ticks <= 0 && !opts.StopWhenSettled {
		if ctx.Done() == nil {
			return 0, errors.New("agent: run would never end: set Ticks, StopWhenSettled or a cancellable context")
		}
	}

	var ticker *time.Ticker
	if opts.Interval > 0 {
		ticker = time.NewTicker(opts.Interval)
		defer ticker.Stop()
	}

	executed := 0
	for opts.Ticks <= 0 || executed < opts.Ticks {
		if executed > 0 && ticker != nil {
			select {
			case <-ctx.Done():
				return executed, ctx.Err()
			case <-ticker.C:
			}
		}
		if _, err := d.Tick(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return executed, ctxErr
			}
			d.logger.Warn("tick completed with errors", log.Int("tick", executed+1), log.Error(err))
		}
		executed++
		if opts.StopWhenSettled && d.settled() {
			d.logger.Info("all agents settled", log.Int("ticks", executed))
			break
		}
	}
	return executed, nil
}

func (d *Driver) settled() bool {
	return sequence.From(d.Agents()).All((*Agent).settled)
}

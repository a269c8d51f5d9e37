package bt

import (
	"time"

	"github.com/zeusync/gameai/internal/core/observability/log"
)

// Decorators: Inverter, Succeeder, Repeat, Limit, Trace

// DecoratorTask holds the single child shared by all decorators.
type DecoratorTask struct {
	decorated Task
}

func newDecoratorTask(decorated Task) DecoratorTask {
	if decorated == nil {
		panic(ErrNilTask)
	}
	return DecoratorTask{decorated: decorated}
}

// Decorated returns the wrapped task.
func (d *DecoratorTask) Decorated() Task { return d.decorated }

// InverterDecoratorTask flips Success and Failure. Running passes through.
type InverterDecoratorTask struct {
	DecoratorTask
}

var _ Task = (*InverterDecoratorTask)(nil)

func NewInverterDecoratorTask(decorated Task) *InverterDecoratorTask {
	return &InverterDecoratorTask{DecoratorTask: newDecoratorTask(decorated)}
}

func (d *InverterDecoratorTask) Run() TaskResult {
	switch d.decorated.Run() {
	case Success:
		return Failure
	case Failure:
		return Success
	default:
		return Running
	}
}

// SucceederDecoratorTask reports Success whatever the child returns, except
// Running which passes through.
type SucceederDecoratorTask struct {
	DecoratorTask
}

var _ Task = (*SucceederDecoratorTask)(nil)

func NewSucceederDecoratorTask(decorated Task) *SucceederDecoratorTask {
	return &SucceederDecoratorTask{DecoratorTask: newDecoratorTask(decorated)}
}

func (d *SucceederDecoratorTask) Run() TaskResult {
	if d.decorated.Run() == Running {
		return Running
	}
	return Success
}

// RepeatDecoratorTask runs its child up to Times times within a single run.
// The first Failure or Running ends the run with that result; Times
// successes in a row give Success. A run that ended in Running starts
// counting from zero on the next tick.
type RepeatDecoratorTask struct {
	DecoratorTask
	times int
}

var _ Task = (*RepeatDecoratorTask)(nil)

func NewRepeatDecoratorTask(times int, decorated Task) *RepeatDecoratorTask {
	if times < 1 {
		panic(ErrInvalidCount)
	}
	return &RepeatDecoratorTask{DecoratorTask: newDecoratorTask(decorated), times: times}
}

// Times returns the number of successes required.
func (d *RepeatDecoratorTask) Times() int { return d.times }

func (d *RepeatDecoratorTask) Run() TaskResult {
	for i := 0; i < d.times; i++ {
		if result := d.decorated.Run(); result != Success {
			return result
		}
	}
	return Success
}

// LimitDecoratorTask lets its child be invoked at most a fixed number of times
// over the lifetime of the tree. Every invocation counts, Running included.
// Once the budget is spent it fails without touching the child.
type LimitDecoratorTask struct {
	DecoratorTask
	remaining int
}

var _ Task = (*LimitDecoratorTask)(nil)

func NewLimitDecoratorTask(limit int, decorated Task) *LimitDecoratorTask {
	if limit < 0 {
		panic(ErrInvalidCount)
	}
	return &LimitDecoratorTask{DecoratorTask: newDecoratorTask(decorated), remaining: limit}
}

// Remaining returns how many more invocations the child is allowed.
func (d *LimitDecoratorTask) Remaining() int { return d.remaining }

func (d *LimitDecoratorTask) Run() TaskResult {
	if d.remaining == 0 {
		return Failure
	}
	d.remaining--
	return d.decorated.Run()
}

// TraceDecoratorTask returns its child's result unchanged and logs every run
// at debug level.
type TraceDecoratorTask struct {
	DecoratorTask
	name   string
	logger log.Log
}

var _ Task = (*TraceDecoratorTask)(nil)

func NewTraceDecoratorTask(name string, decorated Task, logger log.Log) *TraceDecoratorTask {
	if logger == nil {
		logger = log.NewNop()
	}
	return &TraceDecoratorTask{
		DecoratorTask: newDecoratorTask(decorated),
		name:          name,
		logger:        logger.With(log.String("task", name)),
	}
}

// Name returns the label used in log entries.
func (d *TraceDecoratorTask) Name() string { return d.name }

func (d *TraceDecoratorTask) Run() TaskResult {
	start := time.Now()
	result := d.decorated.Run()
	d.logger.Debug("task run",
		log.Stringer("result", result),
		log.Duration("elapsed", time.Since(start)),
	)
	return result
}

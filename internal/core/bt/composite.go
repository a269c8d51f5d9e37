package bt

import (
	"iter"
	"slices"
)

// CompositeTask holds the children and the order strategy shared by all
// composites. The child list is fixed at construction; only the visiting
// order varies between runs.
type CompositeTask struct {
	tasks    []Task
	strategy TaskOrderStrategy
}

func newCompositeTask(strategy TaskOrderStrategy, tasks []Task) CompositeTask {
	if strategy == nil {
		panic(ErrNilStrategy)
	}
	for _, t := range tasks {
		if t == nil {
			panic(ErrNilTask)
		}
	}
	return CompositeTask{tasks: slices.Clone(tasks), strategy: strategy}
}

// Children returns a copy of the children in construction order.
func (c *CompositeTask) Children() []Task { return slices.Clone(c.tasks) }

// Len returns the number of children.
func (c *CompositeTask) Len() int { return len(c.tasks) }

// Strategy returns the order strategy.
func (c *CompositeTask) Strategy() TaskOrderStrategy { return c.strategy }

// Tasks returns the children in the order they are visited by one run.
func (c *CompositeTask) Tasks() iter.Seq[Task] { return c.strategy.GetTasks(c.tasks) }

// SequenceTask succeeds when all of its children succeed. It stops at the
// first child that fails or is still running and returns that result. An
// empty sequence succeeds.
type SequenceTask struct {
	CompositeTask
}

var _ Task = (*SequenceTask)(nil)

// NewSequenceTask creates a sequence visiting children in order.
func NewSequenceTask(tasks ...Task) *SequenceTask {
	return NewSequenceTaskWithStrategy(SequentialOrderStrategy{}, tasks...)
}

func NewSequenceTaskWithStrategy(strategy TaskOrderStrategy, tasks ...Task) *SequenceTask {
	return &SequenceTask{CompositeTask: newCompositeTask(strategy, tasks)}
}

// NewNonDeterministicSequenceTask creates a sequence visiting its children in
// a random order drawn from next on every run.
func NewNonDeterministicSequenceTask(next IntN, tasks ...Task) *SequenceTask {
	return NewSequenceTaskWithStrategy(NewNonDeterministicOrderStrategy(next), tasks...)
}

func (s *SequenceTask) Run() TaskResult {
	for child := range s.Tasks() {
		if result := child.Run(); result != Success {
			return result
		}
	}
	return Success
}

// SelectorTask succeeds as soon as one of its children does. It stops at the
// first child that does not fail and returns that result. An empty selector
// fails.
type SelectorTask struct {
	CompositeTask
}

var _ Task = (*SelectorTask)(nil)

// NewSelectorTask creates a selector visiting children in order.
func NewSelectorTask(tasks ...Task) *SelectorTask {
	return NewSelectorTaskWithStrategy(SequentialOrderStrategy{}, tasks...)
}

func NewSelectorTaskWithStrategy(strategy TaskOrderStrategy, tasks ...Task) *SelectorTask {
	return &SelectorTask{CompositeTask: newCompositeTask(strategy, tasks)}
}

// NewNonDeterministicSelectorTask creates a selector trying its children in a
// random order drawn from next on every run.
func NewNonDeterministicSelectorTask(next IntN, tasks ...Task) *SelectorTask {
	return NewSelectorTaskWithStrategy(NewNonDeterministicOrderStrategy(next), tasks...)
}

func (s *SelectorTask) Run() TaskResult {
	for child := range s.Tasks() {
		if result := child.Run(); result != Failure {
			return result
		}
	}
	return Failure
}

package bt

import (
	"iter"
	"slices"

	"github.com/zeusync/gameai/pkg/sequence"
)

// TaskOrderStrategy decides the order in which a composite visits its
// children during one run.
type TaskOrderStrategy interface {
	// GetTasks returns the children in visiting order. It is called once per
	// run and must not modify tasks.
	GetTasks(tasks []Task) iter.Seq[Task]
}

// SequentialOrderStrategy visits children in the order they were given.
type SequentialOrderStrategy struct{}

var _ TaskOrderStrategy = SequentialOrderStrategy{}

func (SequentialOrderStrategy) GetTasks(tasks []Task) iter.Seq[Task] {
	return sequence.From(tasks).Seq()
}

// NonDeterministicOrderStrategy visits children in a uniformly random order,
// drawn fresh on every iteration of the returned sequence.
type NonDeterministicOrderStrategy struct {
	next IntN
}

var _ TaskOrderStrategy = (*NonDeterministicOrderStrategy)(nil)

// NewNonDeterministicOrderStrategy creates a strategy drawing indices from next.
func NewNonDeterministicOrderStrategy(next IntN) *NonDeterministicOrderStrategy {
	if next == nil {
		panic(ErrNilRandom)
	}
	return &NonDeterministicOrderStrategy{next: next}
}

// GetTasks shuffles without replacement: each step picks one of the remaining
// children and removes it from the pool. Picks are made as the sequence is
// consumed, so a composite that stops early draws fewer numbers.
func (s *NonDeterministicOrderStrategy) GetTasks(tasks []Task) iter.Seq[Task] {
	if len(tasks) < 2 {
		return sequence.From(tasks).Seq()
	}
	return func(yield func(Task) bool) {
		pool := slices.Clone(tasks)
		for len(pool) > 0 {
			i := s.next(len(pool))
			if i < 0 || i >= len(pool) {
				panic(ErrRandomOutOfRange)
			}
			task := pool[i]
			pool = slices.Delete(pool, i, i+1)
			if !yield(task) {
				return
			}
		}
	}
}

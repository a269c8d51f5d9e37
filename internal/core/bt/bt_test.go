package bt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe is a leaf returning a fixed result and counting its runs.
type probe struct {
	result TaskResult
	runs   int
}

func (p *probe) Run() TaskResult {
	p.runs++
	return p.result
}

func probes(results ...TaskResult) ([]*probe, []Task) {
	ps := make([]*probe, len(results))
	ts := make([]Task, len(results))
	for i, r := range results {
		ps[i] = &probe{result: r}
		ts[i] = ps[i]
	}
	return ps, ts
}

func TestTaskResultString(t *testing.T) {
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "Failure", Failure.String())
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Invalid", TaskResult(42).String())
}

func TestLeafTaskReturnsActionResult(t *testing.T) {
	for _, want := range []TaskResult{Success, Failure, Running} {
		calls := 0
		leaf := NewLeafTask(func() TaskResult {
			calls++
			return want
		})
		assert.Equal(t, want, leaf.Run())
		assert.Equal(t, 1, calls)
	}
}

func TestLeafTaskNilAction(t *testing.T) {
	require.PanicsWithValue(t, ErrNilAction, func() { NewLeafTask(nil) })
}

func TestSequenceShortCircuits(t *testing.T) {
	tests := []struct {
		name     string
		results  []TaskResult
		want     TaskResult
		lastRuns int // index of the last child expected to run
	}{
		{"all succeed", []TaskResult{Success, Success, Success}, Success, 2},
		{"failure stops", []TaskResult{Success, Failure, Success}, Failure, 1},
		{"running stops", []TaskResult{Success, Running, Success}, Running, 1},
		{"first fails", []TaskResult{Failure, Success}, Failure, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, ts := probes(tt.results...)
			assert.Equal(t, tt.want, NewSequenceTask(ts...).Run())
			for i, p := range ps {
				if i <= tt.lastRuns {
					assert.Equal(t, 1, p.runs, "child %d", i)
				} else {
					assert.Zero(t, p.runs, "child %d", i)
				}
			}
		})
	}
}

func TestSelectorShortCircuits(t *testing.T) {
	tests := []struct {
		name     string
		results  []TaskResult
		want     TaskResult
		lastRuns int
	}{
		{"all fail", []TaskResult{Failure, Failure, Failure}, Failure, 2},
		{"success stops", []TaskResult{Failure, Success, Failure}, Success, 1},
		{"running stops", []TaskResult{Failure, Running, Success}, Running, 1},
		{"first succeeds", []TaskResult{Success, Failure}, Success, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, ts := probes(tt.results...)
			assert.Equal(t, tt.want, NewSelectorTask(ts...).Run())
			for i, p := range ps {
				if i <= tt.lastRuns {
					assert.Equal(t, 1, p.runs, "child %d", i)
				} else {
					assert.Zero(t, p.runs, "child %d", i)
				}
			}
		})
	}
}

func TestEmptyComposites(t *testing.T) {
	assert.Equal(t, Success, NewSequenceTask().Run())
	assert.Equal(t, Failure, NewSelectorTask().Run())

	never := func(int) int {
		t.Fatal("random source must not be consulted")
		return 0
	}
	assert.Equal(t, Success, NewNonDeterministicSequenceTask(never).Run())
	assert.Equal(t, Failure, NewNonDeterministicSelectorTask(never).Run())
}

func TestNestedSelectorFallsThrough(t *testing.T) {
	ps, ts := probes(Success, Failure, Success)
	tree := NewSelectorTask(NewSequenceTask(ts[0], ts[1]), ts[2])

	assert.Equal(t, Success, tree.Run())
	assert.Equal(t, 1, ps[0].runs)
	assert.Equal(t, 1, ps[1].runs)
	assert.Equal(t, 1, ps[2].runs)
}

func TestRunningResumesOnNextTick(t *testing.T) {
	ticks := 0
	walk := NewLeafTask(func() TaskResult {
		ticks++
		if ticks < 3 {
			return Running
		}
		return Success
	})
	after := &probe{result: Success}
	tree := NewSequenceTask(walk, after)

	assert.Equal(t, Running, tree.Run())
	assert.Equal(t, Running, tree.Run())
	assert.Equal(t, Success, tree.Run())
	assert.Equal(t, 1, after.runs)
}

func TestCompositeConstructionContract(t *testing.T) {
	require.PanicsWithValue(t, ErrNilStrategy, func() { NewSequenceTaskWithStrategy(nil) })
	require.PanicsWithValue(t, ErrNilStrategy, func() { NewSelectorTaskWithStrategy(nil) })
	require.PanicsWithValue(t, ErrNilTask, func() { NewSequenceTask(&probe{}, nil) })
	require.PanicsWithValue(t, ErrNilRandom, func() { NewNonDeterministicSelectorTask(nil) })
}

func TestCompositeChildrenAreCopied(t *testing.T) {
	_, ts := probes(Success, Failure)
	seq := NewSequenceTask(ts...)
	ts[1] = &probe{result: Success}

	children := seq.Children()
	require.Len(t, children, 2)
	children[1] = nil

	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, Failure, seq.Run())
	assert.NotNil(t, seq.Children()[1])
	assert.IsType(t, SequentialOrderStrategy{}, seq.Strategy())
}

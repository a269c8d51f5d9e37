package scenario

import (
	"fmt"

	"github.com/zeusync/gameai/internal/core/bt"
	"github.com/zeusync/gameai/internal/core/pathfinding"
)

// NewTravelTask plans a path with pathfinding.FindPath: Success when a path
// exists, Failure otherwise. onPath, if set, receives the path.
func NewTravelTask(g pathfinding.Graph, from, to int, onPath func([]pathfinding.Connection)) bt.Task {
	return bt.NewLeafTask(func() bt.TaskResult {
		path, ok := pathfinding.FindPath(g, from, to)
		if !ok {
			return bt.Failure
		}
		if onPath != nil {
			onPath(path)
		}
		return bt.Success
	})
}

// Walker moves an agent along a planned path, one connection per tick.
type Walker struct {
	graph    pathfinding.Graph
	from, to int
	report   func(string)

	planned bool
	path    []pathfinding.Connection
	step    int
}

// NewWalker creates a walker travelling from one node of g to another.
// report, if set, is told about every hop.
func NewWalker(g pathfinding.Graph, from, to int, report func(string)) *Walker {
	return &Walker{graph: g, from: from, to: to, report: report}
}

// Position returns the node the walker stands on.
func (w *Walker) Position() int {
	if w.step == 0 {
		return w.from
	}
	return w.path[w.step-1].To
}

// Arrived reports whether the destination was reached.
func (w *Walker) Arrived() bool {
	return w.planned && w.step == len(w.path)
}

// Task returns the subtree planning the route once and then walking it:
//
//	Sequence
//	├── Selector
//	│   ├── planned?
//	│   └── travel
//	└── walk                      (Running until the last hop)
func (w *Walker) Task() bt.Task {
	planned := bt.NewLeafTask(func() bt.TaskResult {
		if w.planned {
			return bt.Success
		}
		return bt.Failure
	})
	travel := NewTravelTask(w.graph, w.from, w.to, func(path []pathfinding.Connection) {
		w.path = path
		w.planned = true
	})
	walk := bt.NewLeafTask(w.walk)
	return bt.NewSequenceTask(bt.NewSelectorTask(planned, travel), walk)
}

func (w *Walker) walk() bt.TaskResult {
	if w.step == len(w.path) {
		return bt.Success
	}
	hop := w.path[w.step]
	w.step++
	if w.report != nil {
		w.report(fmt.Sprintf("walk %d->%d", hop.From, hop.To))
	}
	if w.step < len(w.path) {
		return bt.Running
	}
	return bt.Success
}

// LevelGraph is the map of the sample level: node 0 is the street, node 7 the
// door.
func LevelGraph() *pathfinding.ListGraph {
	g, err := pathfinding.NewMatrixGraph([][]float64{
		{0.0, 0.2, 0.0, 1.2, 0.0, 0.0, 9.5, 0.0},
		{0.1, 0.0, 0.0, 0.0, 3.1, 0.0, 0.0, 0.0},
		{0.0, 2.3, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0},
		{4.5, 0.0, 0.0, 0.0, 3.5, 0.0, 0.0, 0.0},
		{0.0, 0.0, 2.1, 0.0, 0.0, 0.0, 0.0, 0.0},
		{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.1},
		{0.0, 0.0, 0.0, 0.0, 0.0, 0.7, 0.0, 5.2},
		{0.0, 0.0, 0.0, 0.0, 0.3, 0.0, 0.0, 0.0},
	})
	if err != nil {
		panic(err)
	}
	return g
}

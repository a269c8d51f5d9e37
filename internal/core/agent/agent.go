// Package agent drives behavior trees tick by tick.
package agent

import (
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/gameai/internal/core/bt"
)

// Agent owns one behavior tree. The driver is the only caller of its root.
type Agent struct {
	id   uuid.UUID
	name string
	root bt.Task

	mu    sync.RWMutex
	ticks uint64
	last  bt.TaskResult
	ran   bool
}

func newAgent(name string, root bt.Task) *Agent {
	return &Agent{id: uuid.New(), name: name, root: root}
}

func (a *Agent) ID() uuid.UUID { return a.id }

func (a *Agent) Name() string { return a.name }

// Root returns the root of the agent's tree.
func (a *Agent) Root() bt.Task { return a.root }

// Ticks returns how many times the tree was run.
func (a *Agent) Ticks() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ticks
}

// Last returns the result of the latest run; ok is false before the first.
func (a *Agent) Last() (result bt.TaskResult, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last, a.ran
}

// settled reports whether the agent has run at least once and its tree did
// not ask to be run again.
func (a *Agent) settled() bool {
	result, ok := a.Last()
	return ok && result != bt.Running
}

func (a *Agent) tick() bt.TaskResult {
	result := a.root.Run()
	a.mu.Lock()
	a.ticks++
	a.last = result
	a.ran = true
	a.mu.Unlock()
	return result
}

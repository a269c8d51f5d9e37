// Package scenario builds the sample behavior trees driven by the
// doorbreaker command.
package scenario

import (
	"github.com/zeusync/gameai/internal/core/bt"
	"github.com/zeusync/gameai/internal/core/observability/log"
)

// Actions reported by the door tree.
const (
	ActionEnter       = "enter"
	ActionOpenDoor    = "open door"
	ActionBargeDoor   = "barge door"
	ActionGetMatches  = "get matches"
	ActionGetGasoline = "get gasoline"
	ActionDouseDoor   = "douse door"
	ActionIgniteDoor  = "ignite door"
)

// DoorConfig parameterises NewDoorTree.
type DoorConfig struct {
	// Next orders the children of the non-deterministic composites.
	Next bt.IntN
	// Chance returns a number in [0, 1) for every probabilistic action.
	Chance func() float64

	EnterChance float64
	OpenChance  float64
	BargeChance float64

	// Report is told about every action that succeeded. Optional.
	Report func(action string)
	// Logger traces every leaf at debug level when set.
	Logger log.Log
}

// NewDoorTree builds the tree of an agent trying to get through a door:
//
//	Selector
//	├── enter                     (EnterChance)
//	├── open door                 (OpenChance)
//	└── NonDeterministicSelector
//	    ├── barge door            (BargeChance)
//	    └── Sequence
//	        ├── NonDeterministicSequence
//	        │   ├── get matches
//	        │   └── get gasoline
//	        ├── douse door
//	        └── ignite door
func NewDoorTree(cfg DoorConfig) bt.Task {
	if cfg.Chance == nil {
		panic(bt.ErrNilRandom)
	}
	b := builder{report: cfg.Report, logger: cfg.Logger}

	burn := bt.NewSequenceTask(
		bt.NewNonDeterministicSequenceTask(cfg.Next,
			b.always(ActionGetMatches),
			b.always(ActionGetGasoline),
		),
		b.always(ActionDouseDoor),
		b.always(ActionIgniteDoor),
	)

	return bt.NewSelectorTask(
		b.chance(ActionEnter, cfg.Chance, cfg.EnterChance),
		b.chance(ActionOpenDoor, cfg.Chance, cfg.OpenChance),
		bt.NewNonDeterministicSelectorTask(cfg.Next,
			b.chance(ActionBargeDoor, cfg.Chance, cfg.BargeChance),
			burn,
		),
	)
}

type builder struct {
	report func(string)
	logger log.Log
}

func (b builder) leaf(action string, fn func() bt.TaskResult) bt.Task {
	var task bt.Task = bt.NewLeafTask(func() bt.TaskResult {
		result := fn()
		if result == bt.Success && b.report != nil {
			b.report(action)
		}
		return result
	})
	if b.logger != nil {
		task = bt.NewTraceDecoratorTask(action, task, b.logger)
	}
	return task
}

func (b builder) always(action string) bt.Task {
	return b.leaf(action, func() bt.TaskResult { return bt.Success })
}

func (b builder) chance(action string, roll func() float64, p float64) bt.Task {
	return b.leaf(action, func() bt.TaskResult {
		if roll() < p {
			return bt.Success
		}
		return bt.Failure
	})
}

// NewBurglarTree walks to the door first and then tries to get through it.
// A nil walker means the agent starts at the door.
func NewBurglarTree(cfg DoorConfig, walker *Walker) bt.Task {
	door := NewDoorTree(cfg)
	if walker == nil {
		return door
	}
	return bt.NewSequenceTask(walker.Task(), door)
}

package main

import (
	"math/rand/v2"

	"github.com/zeusync/gameai/internal/config"
	"github.com/zeusync/gameai/internal/core/agent"
	"github.com/zeusync/gameai/internal/core/bt"
	"github.com/zeusync/gameai/internal/core/observability/log"
	"github.com/zeusync/gameai/internal/scenario"
)

// addAgents registers one door tree per configured agent. Every agent draws
// from its own generator seeded by the run seed and its name.
func addAgents(cfg *config.Config, driver *agent.Driver, logger log.Log) error {
	for _, ac := range cfg.Agents {
		seed := bt.SeedFromString(cfg.Seed + "/" + ac.Name)
		chance := rand.New(rand.NewPCG(seed, ^seed))
		agentLogger := logger.With(log.String("agent", ac.Name))

		door := scenario.DoorConfig{
			Next:        bt.NewRandIntN(seed),
			Chance:      chance.Float64,
			EnterChance: ac.EnterChance,
			OpenChance:  ac.OpenChance,
			BargeChance: ac.BargeChance,
			Report: func(action string) {
				agentLogger.Info("action succeeded", log.String("action", action))
			},
		}
		if cfg.Level() == log.LevelDebug {
			door.Logger = agentLogger
		}

		var walker *scenario.Walker
		if ac.Route.From != ac.Route.To {
			walker = scenario.NewWalker(scenario.LevelGraph(), ac.Route.From, ac.Route.To, door.Report)
		}

		if _, err := driver.Add(ac.Name, scenario.NewBurglarTree(door, walker)); err != nil {
			return err
		}
	}
	return nil
}

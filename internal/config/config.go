// Package config loads the settings of the behavior tree driver.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/gameai/internal/core/observability/log"
	"github.com/zeusync/gameai/internal/scenario"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	LogLevel        string        `yaml:"log_level"`
	Ticks           int           `yaml:"ticks"`
	Interval        time.Duration `yaml:"interval"`
	Seed            string        `yaml:"seed"`
	StopWhenSettled bool          `yaml:"stop_when_settled"`
	Parallelism     int           `yaml:"parallelism"`
	Monitor         MonitorConfig `yaml:"monitor"`
	Agents          []AgentConfig `yaml:"agents"`
}

// MonitorConfig enables the websocket tick feed when Listen is set.
type MonitorConfig struct {
	Listen string `yaml:"listen"`
	Path   string `yaml:"path"`
}

// AgentConfig describes one door-breaking agent.
type AgentConfig struct {
	Name        string      `yaml:"name"`
	EnterChance float64     `yaml:"enter_chance"`
	OpenChance  float64     `yaml:"open_chance"`
	BargeChance float64     `yaml:"barge_chance"`
	Route       RouteConfig `yaml:"route"`
}

// RouteConfig is the trip an agent makes to reach the door, as node indices
// of the level graph. A zero route means the agent starts at the door.
type RouteConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Default returns the settings of the classic door sample: one agent and
// five runs with a 30% chance for every probabilistic action.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Ticks:    5,
		Seed:     "doorbreaker",
		Monitor:  MonitorConfig{Path: "/ws"},
		Agents: []AgentConfig{
			{Name: "burglar", EnterChance: 0.3, OpenChance: 0.3, BargeChance: 0.3},
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if c.Monitor.Path == "" {
		c.Monitor.Path = "/ws"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges and agent names.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Ticks < 1 {
		errs = append(errs, fmt.Errorf("ticks must be at least 1, got %d", c.Ticks))
	}
	if c.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative, got %s", c.Interval))
	}
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism))
	}
	if len(c.Agents) == 0 {
		errs = append(errs, errors.New("at least one agent is required"))
	}
	nodes := scenario.LevelGraph().NodeCount()
	seen := make(map[string]bool, len(c.Agents))
	for i, a := range c.Agents {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("agent %d: name is required", i))
		} else if seen[a.Name] {
			errs = append(errs, fmt.Errorf("agent %d: duplicate name %q", i, a.Name))
		}
		seen[a.Name] = true
		for _, c := range []struct {
			field string
			p     float64
		}{
			{"enter_chance", a.EnterChance},
			{"open_chance", a.OpenChance},
			{"barge_chance", a.BargeChance},
		} {
			if c.p < 0 || c.p > 1 {
				errs = append(errs, fmt.Errorf("agent %q: %s must be within [0,1], got %g", a.Name, c.field, c.p))
			}
		}
		for _, n := range []int{a.Route.From, a.Route.To} {
			if n < 0 || n >= nodes {
				errs = append(errs, fmt.Errorf("agent %q: route node %d is outside the level, which has nodes 0..%d", a.Name, n, nodes-1))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

package agent

import (
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/gameai/internal/core/bt"
)

// EventTick is the bus event type carrying a Report.
const EventTick = "agent.tick"

// Report describes one run of one agent's tree.
type Report struct {
	AgentID   uuid.UUID     `json:"agent_id"`
	Agent     string        `json:"agent"`
	Tick      uint64        `json:"tick"`
	Result    bt.TaskResult `json:"-"`
	Status    string        `json:"result"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Timestamp time.Time     `json:"ts"`
}

// TickEvent carries a Report on the event bus.
type TickEvent struct {
	Report Report
}

func (e TickEvent) Type() string         { return EventTick }
func (e TickEvent) Source() string       { return e.Report.Agent }
func (e TickEvent) Timestamp() time.Time { return e.Report.Timestamp }
func (e TickEvent) Data() any            { return e.Report }

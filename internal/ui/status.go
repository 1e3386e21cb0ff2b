package ui

import (
	"fmt"
	"time"
)

// Status is the host state shown on the HUD.
type Status struct {
	Generation    uint64
	Population    int
	TicksPerFrame int
	LastStep      time.Duration
	Paused        bool
}

// Lines formats the status one item per line.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("alive %d", s.Population),
		fmt.Sprintf("ticks/frame %d", s.TicksPerFrame),
		fmt.Sprintf("step %.2fms", float64(s.LastStep.Microseconds())/1000),
		state,
	}
}

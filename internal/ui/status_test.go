package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	s := Status{Generation: 12, Population: 5, TicksPerFrame: 3, LastStep: 1500 * time.Microsecond, Paused: true}
	assert.Equal(t, []string{"gen 12", "alive 5", "ticks/frame 3", "step 1.50ms", "paused"}, s.Lines())

	s.Paused = false
	assert.Equal(t, "running", s.Lines()[4])
}

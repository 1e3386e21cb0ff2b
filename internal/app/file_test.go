package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-wasm/pkg/sims/life"
)

const universeFile = `
universe {
  width       = 33
  height      = 20
  seed        = "random"
  random_seed = 7
  density     = 0.25
  alive       = [[1, 2], [universe.height - 1, 0]]
}

stamp "pulsar" {
  row    = universe.height / 2
  column = floor(universe.width / 2)
}

stamp "glider" {
  row    = 0
  column = max(1, 3)
}

host {
  scale           = 3
  ticks_per_frame = 4
  generations     = 120
}
`

func TestLoadHCL(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.LoadHCL([]byte(universeFile), "universe.hcl"))

	assert.Equal(t, 33, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, SeedRandom, cfg.Seed)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.InDelta(t, 0.25, cfg.Density, 1e-9)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, 4, cfg.TicksPerFrame)
	assert.Equal(t, 120, cfg.Generations)
	assert.Equal(t, 60, cfg.TPS, "absent attributes keep their defaults")

	if diff := cmp.Diff([]life.Coord{{1, 2}, {19, 0}}, cfg.Alive); diff != "" {
		t.Fatalf("alive mismatch (-want +got):\n%s", diff)
	}
	wantStamps := []Stamp{
		{Pattern: "pulsar", Row: 10, Column: 16},
		{Pattern: "glider", Row: 0, Column: 3},
	}
	if diff := cmp.Diff(wantStamps, cfg.Stamps); diff != "" {
		t.Fatalf("stamps mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadHCLEmptyKeepsDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.LoadHCL([]byte(""), "empty.hcl"))
	if diff := cmp.Diff(NewConfig(), cfg); diff != "" {
		t.Fatalf("config changed (-want +got):\n%s", diff)
	}
}

func TestLoadHCLErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":        `universe {`,
		"unknown block": `world {}`,
		"bad type":      `universe { width = "wide" }`,
		"short pair":    `universe { alive = [[1]] }`,
		"fractional":    "stamp \"glider\" {\n  row    = 1.5\n  column = 0\n}\n",
		"missing row":   `stamp "glider" { column = 0 }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			assert.Error(t, cfg.LoadHCL([]byte(src), name+".hcl"))
		})
	}
}

func TestLoadHCLWithOverride(t *testing.T) {
	src := `
universe {
  width  = 40
  height = 30
  alive  = [[0, universe.width - 1]]
}

stamp "pulsar" {
  row    = floor(universe.height / 2)
  column = floor(universe.width / 2)
}
`
	cfg := NewConfig()
	err := cfg.LoadHCLWith([]byte(src), "override.hcl", func(c *Config) error {
		c.Width = 24
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Width)
	assert.Equal(t, []life.Coord{{Row: 0, Column: 23}}, cfg.Alive)
	assert.Equal(t, []Stamp{{Pattern: "pulsar", Row: 15, Column: 12}}, cfg.Stamps)

	errOverride := errors.New("rejected")
	err = NewConfig().LoadHCLWith([]byte(src), "override.hcl", func(*Config) error { return errOverride })
	assert.ErrorIs(t, err, errOverride)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(universeFile), 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, 33, cfg.Width)

	assert.Error(t, NewConfig().LoadFile(filepath.Join(t.TempDir(), "missing.hcl")))
}

package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"life-wasm/pkg/sims/life"
)

// Seed strategy names accepted by Config.Seed.
const (
	SeedPattern = "pattern"
	SeedRandom  = "random"
)

// MaxTicksPerFrame bounds the generations advanced per rendered frame.
const MaxTicksPerFrame = 10

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Stamp places a registered pattern centred on an anchor.
type Stamp struct {
	Pattern string
	Row     int
	Column  int
}

// Config represents the command-line and file parameters for the hosts.
type Config struct {
	Width      int
	Height     int
	Seed       string
	RandomSeed int64
	Density    float64
	Stamps     []Stamp
	Alive      []life.Coord

	Scale         int
	TPS           int
	GPS           int
	TicksPerFrame int

	Generations int
	PrintEvery  bool

	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:         64,
		Height:        64,
		Seed:          SeedPattern,
		RandomSeed:    42,
		Density:       0.5,
		Scale:         5,
		TPS:           60,
		GPS:           30,
		TicksPerFrame: 1,
		Generations:   10,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "universe width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "universe height in cells")
	fs.StringVar(&c.Seed, "seed", c.Seed, "initial seed strategy: 'pattern' or 'random'")
	fs.Int64Var(&c.RandomSeed, "random-seed", c.RandomSeed, "seed for the random strategy")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a cell starting alive with the random strategy")
	fs.Var(&stampFlag{cfg: c, pattern: life.Glider.Name}, "glider", "stamp a glider at row,col (repeatable)")
	fs.Var(&stampFlag{cfg: c, pattern: life.Pulsar.Name}, "pulsar", "stamp a pulsar at row,col (repeatable)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of a cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second before ticks-per-frame")
	fs.IntVar(&c.TicksPerFrame, "ticks-per-frame", c.TicksPerFrame, "generations advanced per frame (1-10)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run in headless mode")
	fs.BoolVar(&c.PrintEvery, "print-every", c.PrintEvery, "print every generation in headless mode")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to an HCL universe file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logging level: 'debug', 'info', 'warn' or 'error'")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output format: 'text' or 'json'")
}

// stampFlag collects repeatable row,col anchors for one pattern.
type stampFlag struct {
	cfg     *Config
	pattern string
}

func (f *stampFlag) String() string {
	if f.cfg == nil {
		return ""
	}
	var parts []string
	for _, s := range f.cfg.Stamps {
		if s.Pattern == f.pattern {
			parts = append(parts, fmt.Sprintf("%d,%d", s.Row, s.Column))
		}
	}
	return strings.Join(parts, " ")
}

func (f *stampFlag) Set(value string) error {
	coord, err := parseCoord(value)
	if err != nil {
		return err
	}
	f.cfg.Stamps = append(f.cfg.Stamps, Stamp{Pattern: f.pattern, Row: coord.Row, Column: coord.Column})
	return nil
}

func parseCoord(value string) (life.Coord, error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return life.Coord{}, fmt.Errorf("coordinate %q: want row,col", value)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return life.Coord{}, fmt.Errorf("coordinate %q: row: %w", value, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return life.Coord{}, fmt.Errorf("coordinate %q: column: %w", value, err)
	}
	return life.Coord{Row: row, Column: col}, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.Seed {
	case SeedPattern, SeedRandom:
	default:
		return fmt.Errorf("%w: seed %q must be %q or %q", ErrInvalidConfig, c.Seed, SeedPattern, SeedRandom)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0, 1]", ErrInvalidConfig, c.Density)
	}
	if c.TicksPerFrame < 1 || c.TicksPerFrame > MaxTicksPerFrame {
		return fmt.Errorf("%w: ticks-per-frame %d outside [1, %d]", ErrInvalidConfig, c.TicksPerFrame, MaxTicksPerFrame)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations %d is negative", ErrInvalidConfig, c.Generations)
	}
	for _, s := range c.Stamps {
		if _, ok := life.LookupPattern(s.Pattern); !ok {
			return fmt.Errorf("%w: unknown pattern %q", ErrInvalidConfig, s.Pattern)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log-format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// SeedStrategy returns the strategy selected by the configuration.
func (c *Config) SeedStrategy() life.SeedStrategy {
	if c.Seed == SeedRandom {
		return life.NewRandom(c.RandomSeed, c.Density)
	}
	return life.DefaultPattern
}

// Universe validates the configuration and builds the seeded universe with
// every stamp and alive coordinate applied.
func (c *Config) Universe() (*life.Universe, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	u := life.New(c.Width, c.Height, c.SeedStrategy())
	for _, s := range c.Stamps {
		p, _ := life.LookupPattern(s.Pattern)
		u.Stamp(p, s.Row, s.Column)
	}
	u.SetAlive(c.Alive...)
	return u, nil
}

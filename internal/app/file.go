package app

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"life-wasm/pkg/sims/life"
)

// fileRoot is the top-level schema of a universe file:
//
//	universe {
//	  width  = 32
//	  height = 32
//	  seed   = "random"
//	  alive  = [[1, 2], [2, 3]]
//	}
//	stamp "pulsar" {
//	  row    = floor(universe.height / 2)
//	  column = floor(universe.width / 2)
//	}
//	host {
//	  ticks_per_frame = 2
//	}
type fileRoot struct {
	Universe *universeBlock `hcl:"universe,block"`
	Stamps   []*stampBlock  `hcl:"stamp,block"`
	Host     *hostBlock     `hcl:"host,block"`
}

type universeBlock struct {
	Width      *int           `hcl:"width,optional"`
	Height     *int           `hcl:"height,optional"`
	Seed       *string        `hcl:"seed,optional"`
	RandomSeed *int64         `hcl:"random_seed,optional"`
	Density    *float64       `hcl:"density,optional"`
	Alive      hcl.Expression `hcl:"alive,optional"`
}

type stampBlock struct {
	Pattern string         `hcl:"pattern,label"`
	Row     hcl.Expression `hcl:"row"`
	Column  hcl.Expression `hcl:"column"`
}

type hostBlock struct {
	Scale         *int `hcl:"scale,optional"`
	TPS           *int `hcl:"tps,optional"`
	GPS           *int `hcl:"gps,optional"`
	TicksPerFrame *int `hcl:"ticks_per_frame,optional"`
	Generations   *int `hcl:"generations,optional"`
}

// Override adjusts a Config after a file's scalar attributes are applied
// and before its expressions are evaluated against them.
type Override func(*Config) error

// LoadFile overlays the attributes present in the HCL file at path onto c.
func (c *Config) LoadFile(path string) error { return c.LoadFileWith(path, nil) }

// LoadFileWith is LoadFile with an override applied between the scalar
// attributes and the stamp and alive expressions, so the expressions see
// the overridden dimensions.
func (c *Config) LoadFileWith(path string, override Override) error {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse universe file %s: %w", path, diags)
	}
	return c.decode(f.Body, path, override)
}

// LoadHCL is LoadFile for in-memory sources.
func (c *Config) LoadHCL(src []byte, filename string) error {
	return c.LoadHCLWith(src, filename, nil)
}

// LoadHCLWith is LoadFileWith for in-memory sources.
func (c *Config) LoadHCLWith(src []byte, filename string, override Override) error {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse universe file %s: %w", filename, diags)
	}
	return c.decode(f.Body, filename, override)
}

func (c *Config) decode(body hcl.Body, name string, override Override) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode universe file %s: %w", name, diags)
	}

	if u := root.Universe; u != nil {
		setIf(&c.Width, u.Width)
		setIf(&c.Height, u.Height)
		setIf(&c.Seed, u.Seed)
		setIf(&c.RandomSeed, u.RandomSeed)
		setIf(&c.Density, u.Density)
	}
	if h := root.Host; h != nil {
		setIf(&c.Scale, h.Scale)
		setIf(&c.TPS, h.TPS)
		setIf(&c.GPS, h.GPS)
		setIf(&c.TicksPerFrame, h.TicksPerFrame)
		setIf(&c.Generations, h.Generations)
	}
	if override != nil {
		if err := override(c); err != nil {
			return err
		}
	}

	evalCtx := c.evalContext()
	if root.Universe != nil && root.Universe.Alive != nil {
		alive, err := decodeAlive(root.Universe.Alive, evalCtx)
		if err != nil {
			return fmt.Errorf("universe file %s: %w", name, err)
		}
		c.Alive = append(c.Alive, alive...)
	}
	for _, s := range root.Stamps {
		stamp := Stamp{Pattern: s.Pattern}
		if diags := gohcl.DecodeExpression(s.Row, evalCtx, &stamp.Row); diags.HasErrors() {
			return fmt.Errorf("universe file %s: stamp %q row: %w", name, s.Pattern, diags)
		}
		if diags := gohcl.DecodeExpression(s.Column, evalCtx, &stamp.Column); diags.HasErrors() {
			return fmt.Errorf("universe file %s: stamp %q column: %w", name, s.Pattern, diags)
		}
		c.Stamps = append(c.Stamps, stamp)
	}
	return nil
}

// evalContext exposes the decoded dimensions and a few numeric helpers to
// stamp and alive expressions.
func (c *Config) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"universe": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(c.Width)),
				"height": cty.NumberIntVal(int64(c.Height)),
			}),
		},
		Functions: map[string]function.Function{
			"floor": stdlib.FloorFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
		},
	}
}

func decodeAlive(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]life.Coord, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("alive: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	var pairs [][]int
	if diags := gohcl.DecodeExpression(expr, evalCtx, &pairs); diags.HasErrors() {
		return nil, fmt.Errorf("alive: %w", diags)
	}
	coords := make([]life.Coord, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("alive[%d]: want [row, column], got %d values", i, len(p))
		}
		coords = append(coords, life.Coord{Row: p[0], Column: p[1]})
	}
	return coords, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

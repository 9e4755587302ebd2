// Package rotation implements component K: a declarative mixed-game
// rotation document (e.g. HORSE: an ordered list of variant legs with a
// hand count per leg), parsed with HCL the way the teacher's
// internal/server config.go declares its table/bot topology.
package rotation

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is a full rotation document: a name plus an ordered list of
// legs, each naming a variant description file and how many hands to
// play before moving to the next leg.
type Config struct {
	Name string `hcl:"name"`
	Legs []Leg  `hcl:"leg,block"`
}

// Leg is one rotation entry: a variant description file path and the
// hand count to play from it before rotating on.
type Leg struct {
	Variant string `hcl:"variant,label"`
	Rules   string `hcl:"rules"`
	Hands   int    `hcl:"hands,optional"`
}

// DefaultHandsPerLeg is applied to any leg that doesn't specify one,
// matching a standard HORSE "8 hands per game" rotation length.
const DefaultHandsPerLeg = 8

// Load parses a rotation document from filename, applying
// DefaultHandsPerLeg to legs that omit "hands".
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("rotation: %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("rotation: parsing %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("rotation: decoding %s: %s", filename, diags.Error())
	}
	if len(cfg.Legs) == 0 {
		return nil, fmt.Errorf("rotation: %s declares no legs", filename)
	}
	for i := range cfg.Legs {
		if cfg.Legs[i].Hands <= 0 {
			cfg.Legs[i].Hands = DefaultHandsPerLeg
		}
	}
	return &cfg, nil
}

// Cursor tracks progress through a rotation: which leg is active and
// how many hands remain in it.
type Cursor struct {
	cfg         *Config
	legIdx      int
	handsPlayed int
}

// NewCursor starts a rotation at its first leg.
func NewCursor(cfg *Config) *Cursor {
	return &Cursor{cfg: cfg}
}

// CurrentLeg returns the active leg.
func (c *Cursor) CurrentLeg() Leg {
	return c.cfg.Legs[c.legIdx]
}

// AdvanceHand records that one hand of the current leg completed,
// rotating to the next leg (wrapping around) once the leg's hand count
// is exhausted.
func (c *Cursor) AdvanceHand() {
	c.handsPlayed++
	if c.handsPlayed >= c.CurrentLeg().Hands {
		c.handsPlayed = 0
		c.legIdx = (c.legIdx + 1) % len(c.cfg.Legs)
	}
}

// Package typechart maps (attacking type, defending type) pairs to damage multipliers
package typechart

import (
	"fmt"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Multipliers a single type pair can hold
const (
	NoEffect         = 0.0
	NotVeryEffective = 0.5
	Normal           = 1.0
	SuperEffective   = 2.0
)

// Chart is a read-only lookup once construction has finished. Pairs without an
// entry are normal effectiveness.
type Chart struct {
	entries  map[pokemon.Type]map[pokemon.Type]float64
	fallback bool
}

// New returns an empty chart; every pair is 1 until set
func New() *Chart {
	return &Chart{entries: make(map[pokemon.Type]map[pokemon.Type]float64)}
}

// Set stores the multiplier for a pair. Only 0, 0.5, 1 and 2 are accepted.
func (c *Chart) Set(attack, defend pokemon.Type, multiplier float64) error {
	switch multiplier {
	case NoEffect, NotVeryEffective, Normal, SuperEffective:
	default:
		return fmt.Errorf("invalid multiplier %v for %s -> %s", multiplier, attack, defend)
	}

	row, ok := c.entries[attack]
	if !ok {
		row = make(map[pokemon.Type]float64)
		c.entries[attack] = row
	}
	row[defend] = multiplier
	return nil
}

// Effectiveness returns the stored multiplier, or 1 when the pair is absent
func (c *Chart) Effectiveness(attack, defend pokemon.Type) float64 {
	if c == nil {
		return Normal
	}
	if m, ok := c.entries[attack][defend]; ok {
		return m
	}
	return Normal
}

// Has reports whether the pair has an explicit entry
func (c *Chart) Has(attack, defend pokemon.Type) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[attack][defend]
	return ok
}

// Len returns the number of explicit pairs
func (c *Chart) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, row := range c.entries {
		n += len(row)
	}
	return n
}

// AttackingTypes returns the types that have at least one entry
func (c *Chart) AttackingTypes() []pokemon.Type {
	types := make([]pokemon.Type, 0, len(c.entries))
	for _, t := range pokemon.AllTypes {
		if _, ok := c.entries[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// IsFallback reports whether this chart is the built-in table
func (c *Chart) IsFallback() bool {
	return c != nil && c.fallback
}

// Apply records the damage relations of one attacking type. Defending types not
// in allowed are skipped; a nil allowed set accepts everything.
func (c *Chart) Apply(rel *pokemon.TypeRelations, allowed map[pokemon.Type]bool) {
	if rel == nil {
		return
	}
	set := func(targets []pokemon.Type, m float64) {
		for _, t := range targets {
			if allowed != nil && !allowed[t] {
				continue
			}
			// multipliers here are constants so Set cannot fail
			_ = c.Set(rel.Type, t, m) //nolint:errcheck
		}
	}
	set(rel.DoubleDamageTo, SuperEffective)
	set(rel.HalfDamageTo, NotVeryEffective)
	set(rel.NoDamageTo, NoEffect)
}

// FromRelations builds a chart from a list of damage relations
func FromRelations(rels []pokemon.TypeRelations) *Chart {
	c := New()
	for i := range rels {
		c.Apply(&rels[i], nil)
	}
	return c
}

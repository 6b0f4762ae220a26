// Package generation holds the static per-generation tables: which types
// exist, historical species typings and which game data is in scope.
package generation

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

//go:embed overrides.toml
var overridesData string

// typeIntroduced lists types that did not exist in generation 1
var typeIntroduced = map[pokemon.Type]pokemon.Generation{
	pokemon.TypeDark:  2,
	pokemon.TypeSteel: 2,
	pokemon.TypeFairy: 6,
}

// Override replaces a species' typing for a range of generations
type Override struct {
	SpeciesID int      `toml:"species"`
	Name      string   `toml:"name"`
	From      int      `toml:"from"`
	To        int      `toml:"to"`
	Types     []string `toml:"types"`
}

type overrideFile struct {
	Overrides []Override `toml:"override"`
}

type overrideKey struct {
	speciesID int
	gen       pokemon.Generation
}

// Policy answers generation-dependent questions. It is immutable once built.
type Policy struct {
	overrides map[overrideKey][]pokemon.Type
}

var defaultPolicy *Policy

func init() {
	overrides, err := ParseOverrides(overridesData)
	if err != nil {
		panic(fmt.Sprintf("generation: invalid embedded overrides: %v", err))
	}
	defaultPolicy = NewPolicy(overrides)
}

// Default returns the policy built from the embedded override table
func Default() *Policy {
	return defaultPolicy
}

// ParseOverrides decodes a TOML override table
func ParseOverrides(data string) ([]Override, error) {
	var file overrideFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode overrides: %w", err)
	}
	for _, o := range file.Overrides {
		if o.SpeciesID <= 0 {
			return nil, fmt.Errorf("override %q: species id is required", o.Name)
		}
		if o.From > o.To {
			return nil, fmt.Errorf("override %q: from %d is after to %d", o.Name, o.From, o.To)
		}
	}
	return file.Overrides, nil
}

// NewPolicy indexes overrides by species and generation
func NewPolicy(overrides []Override) *Policy {
	p := &Policy{overrides: make(map[overrideKey][]pokemon.Type)}
	for _, o := range overrides {
		types := pokemon.ParseTypes(o.Types)
		for g := o.From; g <= o.To; g++ {
			p.overrides[overrideKey{speciesID: o.SpeciesID, gen: pokemon.Generation(g)}] = types
		}
	}
	return p
}

// TypeAvailable reports whether a type exists in the generation. Types without
// an introduction entry are always available.
func TypeAvailable(t pokemon.Type, gen pokemon.Generation) bool {
	introduced, ok := typeIntroduced[t]
	if !ok {
		return true
	}
	return introduced <= gen
}

// ValidTypes returns the types that exist in the generation, in display order
func (p *Policy) ValidTypes(gen pokemon.Generation) []pokemon.Type {
	types := make([]pokemon.Type, 0, len(pokemon.AllTypes))
	for _, t := range pokemon.AllTypes {
		if TypeAvailable(t, gen) {
			types = append(types, t)
		}
	}
	return types
}

// TypesForSpecies returns the species' typing as of the generation. An override
// replaces the defaults outright; otherwise defaults the generation lacks are dropped.
func (p *Policy) TypesForSpecies(speciesID int, gen pokemon.Generation, defaults []pokemon.Type) []pokemon.Type {
	if override, ok := p.overrides[overrideKey{speciesID: speciesID, gen: gen}]; ok && len(override) > 0 {
		return append([]pokemon.Type(nil), override...)
	}

	types := make([]pokemon.Type, 0, len(defaults))
	for _, t := range defaults {
		if TypeAvailable(t, gen) {
			types = append(types, t)
		}
	}
	return types
}

// HasOverride reports whether the species has an override for the generation
func (p *Policy) HasOverride(speciesID int, gen pokemon.Generation) bool {
	_, ok := p.overrides[overrideKey{speciesID: speciesID, gen: gen}]
	return ok
}

// Package effectiveness combines single-type multipliers into dual-type
// defensive results and offensive checks.
package effectiveness

import (
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Chart looks up the multiplier for a single type pair
type Chart interface {
	Effectiveness(attack, defend pokemon.Type) float64
}

// Defense is the result of one attacking type hitting a one or two type defender
type Defense struct {
	Multiplier         float64
	IsImmune           bool
	ResistingTypeCount int
}

// Resists reports a net multiplier below 1 without immunity
func (d Defense) Resists() bool {
	return !d.IsImmune && d.Multiplier < 1
}

// Weak reports a net multiplier above 1
func (d Defense) Weak() bool {
	return d.Multiplier > 1
}

// DualTypeDefense multiplies the attacker's effectiveness against each defending
// type. A zero from any type latches immunity and the remaining types are skipped.
func DualTypeDefense(chart Chart, attack pokemon.Type, defenders []pokemon.Type) Defense {
	result := Defense{Multiplier: 1}
	for _, t := range defenders {
		if result.IsImmune {
			break
		}
		m := chart.Effectiveness(attack, t)
		if m == 0 {
			result.IsImmune = true
			result.Multiplier = 0
			continue
		}
		result.Multiplier *= m
		if m < 1 {
			result.ResistingTypeCount++
		}
	}
	return result
}

// SuperEffective reports whether a single attacking type hits the target for more than 1
func SuperEffective(chart Chart, attack, target pokemon.Type) bool {
	return chart.Effectiveness(attack, target) > 1
}

// SuperEffectiveTypes returns the attacker types that are super effective
// against the target, each judged on its own
func SuperEffectiveTypes(chart Chart, attackers []pokemon.Type, target pokemon.Type) []pokemon.Type {
	var out []pokemon.Type
	for _, t := range attackers {
		if SuperEffective(chart, t, target) {
			out = append(out, t)
		}
	}
	return out
}

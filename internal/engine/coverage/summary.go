package coverage

import (
	"github.com/KirkDiggler/poketeam-api/internal/engine/effectiveness"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Summary counts team members by how they take hits from one type
type Summary struct {
	Type      pokemon.Type
	Weak      int
	Resistant int
	Immune    int
}

// Exposed reports more weak members than members that resist or are immune
func (s Summary) Exposed() bool {
	return s.Weak > s.Resistant+s.Immune
}

// DefensiveSummary returns one summary per attacking type, in the order given
func DefensiveSummary(chart effectiveness.Chart, team *pokemon.Team, types []pokemon.Type) []Summary {
	summaries := make([]Summary, 0, len(types))
	for _, t := range types {
		summary := Summary{Type: t}
		if team != nil {
			for _, slot := range team.Members() {
				defense := effectiveness.DualTypeDefense(chart, t, slot.Member.Types)
				switch {
				case defense.IsImmune:
					summary.Immune++
				case defense.Multiplier < 1:
					summary.Resistant++
				case defense.Multiplier > 1:
					summary.Weak++
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

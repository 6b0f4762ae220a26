// Package matchup ranks team members against a single opponent
package matchup

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/poketeam-api/internal/engine/effectiveness"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// MaxReasons caps the reasons kept per member
const MaxReasons = 3

// Score weights
const (
	superEffectivePoints = 3
	resistedPoints       = -1
	noEffectPoints       = -2
	immunePoints         = 4
	resistPoints         = 2
	weakPoints           = -2
)

// Score is one member's suitability against the opponent
type Score struct {
	Slot    int
	Member  *pokemon.Member
	Score   int
	Reasons []string
}

type reasons struct {
	immune, superEffective, resist, weak, offense []string
}

func (r *reasons) ordered() []string {
	all := make([]string, 0, len(r.immune)+len(r.superEffective)+len(r.resist)+len(r.weak)+len(r.offense))
	all = append(all, r.immune...)
	all = append(all, r.superEffective...)
	all = append(all, r.resist...)
	all = append(all, r.weak...)
	all = append(all, r.offense...)

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, MaxReasons)
	for _, reason := range all {
		if seen[reason] {
			continue
		}
		seen[reason] = true
		out = append(out, reason)
		if len(out) == MaxReasons {
			break
		}
	}
	return out
}

// Recommend scores every non-empty slot against the opponent's types and
// returns them best first. Members with equal scores keep their slot order.
func Recommend(chart effectiveness.Chart, team *pokemon.Team, opponent []pokemon.Type) []Score {
	if team == nil {
		return nil
	}

	slots := team.Members()
	scores := make([]Score, 0, len(slots))
	for _, slot := range slots {
		scores = append(scores, score(chart, slot, opponent))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

func score(chart effectiveness.Chart, slot pokemon.Slot, opponent []pokemon.Type) Score {
	member := slot.Member
	total := 0
	var r reasons

	for _, own := range member.Types {
		for _, opp := range opponent {
			m := chart.Effectiveness(own, opp)
			switch {
			case m > 1:
				total += superEffectivePoints
				r.superEffective = append(r.superEffective,
					fmt.Sprintf("%s attacks are super effective vs %s", own.Title(), opp.Title()))
			case m == 0:
				total += noEffectPoints
				r.offense = append(r.offense,
					fmt.Sprintf("%s attacks have no effect on %s", own.Title(), opp.Title()))
			case m < 1:
				total += resistedPoints
				r.offense = append(r.offense,
					fmt.Sprintf("%s attacks are not very effective vs %s", own.Title(), opp.Title()))
			}
		}
	}

	// each opponent type is judged against the member's types one pair at a
	// time, not as a combined multiplier
	for _, opp := range opponent {
		var immune, resist, weak bool
		for _, own := range member.Types {
			m := chart.Effectiveness(opp, own)
			switch {
			case m == 0:
				immune = true
			case m < 1:
				resist = true
			case m > 1:
				weak = true
			}
		}

		switch {
		case immune:
			total += immunePoints
			r.immune = append(r.immune, fmt.Sprintf("Immune to %s attacks", opp.Title()))
		case resist && !weak:
			total += resistPoints
			r.resist = append(r.resist, fmt.Sprintf("Resists %s attacks", opp.Title()))
		case weak && !resist:
			total += weakPoints
			r.weak = append(r.weak, fmt.Sprintf("Weak to %s attacks", opp.Title()))
		}
	}

	return Score{
		Slot:    slot.Index,
		Member:  member,
		Score:   total,
		Reasons: r.ordered(),
	}
}

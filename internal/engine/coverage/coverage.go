// Package coverage classifies how well a team handles each type
package coverage

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/poketeam-api/internal/engine/effectiveness"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// MaxDisplayReasons is how many reasons per member are shown to users
const MaxDisplayReasons = 2

// Level ranks a member's or a team's answer to a type
type Level int

// Levels in ascending order
const (
	LevelNone Level = iota
	LevelWeak
	LevelNormal
	LevelStrong
)

func (l Level) String() string {
	switch l {
	case LevelWeak:
		return "weak"
	case LevelNormal:
		return "normal"
	case LevelStrong:
		return "strong"
	default:
		return "none"
	}
}

// MemberCoverage is one member's contribution to a type's entry
type MemberCoverage struct {
	Slot    int
	Member  *pokemon.Member
	Level   Level
	Reasons []string
}

// Entry is the team's classification against one type
type Entry struct {
	Type    pokemon.Type
	Level   Level
	Members []MemberCoverage
}

// Compute builds an entry for each of types, normally the types valid in the
// generation being analysed. Member types are expected to already reflect it.
func Compute(chart effectiveness.Chart, team *pokemon.Team, types []pokemon.Type) map[pokemon.Type]*Entry {
	entries := make(map[pokemon.Type]*Entry, len(types))
	for _, t := range types {
		entries[t] = computeEntry(chart, team, t)
	}
	return entries
}

// computeEntry keeps only the members at the entry's highest level. A member
// that raises the level discards everything collected below it.
func computeEntry(chart effectiveness.Chart, team *pokemon.Team, t pokemon.Type) *Entry {
	entry := &Entry{Type: t, Level: LevelNone}
	if team == nil {
		return entry
	}

	for _, slot := range team.Members() {
		mc, ok := classify(chart, slot, t)
		if !ok {
			continue
		}
		switch {
		case mc.Level > entry.Level:
			entry.Level = mc.Level
			entry.Members = []MemberCoverage{mc}
		case mc.Level == entry.Level:
			entry.Members = append(entry.Members, mc)
		}
	}
	return entry
}

func classify(chart effectiveness.Chart, slot pokemon.Slot, t pokemon.Type) (MemberCoverage, bool) {
	member := slot.Member
	defense := effectiveness.DualTypeDefense(chart, t, member.Types)
	superEffective := effectiveness.SuperEffectiveTypes(chart, member.Types, t)

	var reasons []string
	if defense.IsImmune {
		reasons = append(reasons, fmt.Sprintf("Immune to %s", t.Title()))
	}
	for _, own := range superEffective {
		reasons = append(reasons, fmt.Sprintf("%s attacks are super effective vs %s", own.Title(), t.Title()))
	}
	if defense.Resists() {
		reasons = append(reasons, fmt.Sprintf("Resists %s (%s)", t.Title(), FormatMultiplier(defense.Multiplier)))
	}
	if defense.Weak() {
		reasons = append(reasons, fmt.Sprintf("Weak to %s (%s)", t.Title(), FormatMultiplier(defense.Multiplier)))
	}

	hasOffense := len(superEffective) > 0
	resists := defense.Multiplier < 1

	var level Level
	switch {
	case defense.IsImmune || (hasOffense && resists):
		level = LevelStrong
	case hasOffense || resists:
		level = LevelNormal
	case len(reasons) > 0:
		level = LevelWeak
	default:
		return MemberCoverage{}, false
	}

	return MemberCoverage{
		Slot:    slot.Index,
		Member:  member,
		Level:   level,
		Reasons: reasons,
	}, true
}

// DisplayReasons returns at most MaxDisplayReasons reasons
func DisplayReasons(reasons []string) []string {
	if len(reasons) <= MaxDisplayReasons {
		return reasons
	}
	return reasons[:MaxDisplayReasons]
}

// FormatMultiplier renders 0.25 as "0.25x" and 4 as "4x"
func FormatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64) + "x"
}

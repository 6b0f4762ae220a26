package teambuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder"
)

func TestRequirement(t *testing.T) {
	testCases := []struct {
		name   string
		detail pokemon.EvolutionDetail
		want   string
	}{
		{"level", pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: 16}, "Level 16"},
		{"stone", pokemon.EvolutionDetail{Trigger: "use-item", Item: "thunder-stone"}, "Use Thunder Stone"},
		{"trade holding item", pokemon.EvolutionDetail{Trigger: "trade", HeldItem: "metal-coat"}, "Trade, holding Metal Coat"},
		{"friendship at night", pokemon.EvolutionDetail{Trigger: "level-up", MinHappiness: 160, TimeOfDay: "night"},
			"Level up, with high friendship, at night"},
		{"known move", pokemon.EvolutionDetail{Trigger: "level-up", KnownMove: "ancient-power"}, "Level up, knowing Ancient Power"},
		{"location", pokemon.EvolutionDetail{Trigger: "level-up", Location: "mt-coronet"}, "Level up, at Mt Coronet"},
		{"newer trigger", pokemon.EvolutionDetail{Trigger: "three-critical-hits"}, "Three Critical Hits"},
		{"no details", pokemon.EvolutionDetail{}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, teambuilder.Requirement(tc.detail))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Water Stone", teambuilder.DisplayName("water-stone"))
	assert.Equal(t, "", teambuilder.DisplayName(""))
}

package pokemon_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

type TeamTestSuite struct {
	suite.Suite
}

func TestTeamTestSuite(t *testing.T) {
	suite.Run(t, new(TeamTestSuite))
}

func (s *TeamTestSuite) TestEmptySlotsEncodeAsNull() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{
		nil,
		{ID: 25, Name: "pikachu", Types: []pokemon.Type{pokemon.TypeElectric}},
	})

	data, err := json.Marshal(team)
	s.Require().NoError(err)
	s.JSONEq(`[null,{"id":25,"name":"pikachu","types":["electric"]},null,null,null,null]`, string(data))
}

func (s *TeamTestSuite) TestMembersSkipsEmptySlots() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{
		nil,
		{ID: 1, Name: "bulbasaur"},
		nil,
		{ID: 4, Name: "charmander"},
	})

	slots := team.Members()
	s.Require().Len(slots, 2)
	s.Equal(1, slots[0].Index)
	s.Equal("bulbasaur", slots[0].Member.Name)
	s.Equal(3, slots[1].Index)
	s.Equal(2, team.Len())
}

func (s *TeamTestSuite) TestTeamFromSliceIgnoresExtraEntries() {
	members := make([]*pokemon.Member, 8)
	for i := range members {
		members[i] = &pokemon.Member{ID: i + 1}
	}

	team := pokemon.TeamFromSlice(members)
	s.Equal(pokemon.TeamSize, team.Len())
	s.Equal(6, team[5].ID)
}

func (s *TeamTestSuite) TestGenerationValidate() {
	s.NoError(pokemon.Generation(1).Validate())
	s.NoError(pokemon.Generation(9).Validate())
	s.Error(pokemon.Generation(0).Validate())
	s.Error(pokemon.Generation(10).Validate())
	s.Equal(pokemon.LatestGeneration, pokemon.Generation(0).OrLatest())
	s.Equal(pokemon.Generation(3), pokemon.Generation(3).OrLatest())
}

func (s *TeamTestSuite) TestParseTypes() {
	s.Equal([]pokemon.Type{pokemon.TypeFire, pokemon.TypeFlying},
		pokemon.ParseTypes([]string{"fire", "shadow", "flying"}))
	s.Equal("Fire", pokemon.TypeFire.Title())
	s.True(pokemon.TypeFairy.IsKnown())
	s.False(pokemon.Type("shadow").IsKnown())
}

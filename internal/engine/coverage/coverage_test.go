package coverage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/engine/coverage"
	"github.com/KirkDiggler/poketeam-api/internal/engine/generation"
	"github.com/KirkDiggler/poketeam-api/internal/engine/typechart"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

type CoverageTestSuite struct {
	suite.Suite
	chart  *typechart.Chart
	policy *generation.Policy

	charmander *pokemon.Member
	squirtle   *pokemon.Member
	pikachu    *pokemon.Member
	pidgey     *pokemon.Member
	zubat      *pokemon.Member
}

func TestCoverageTestSuite(t *testing.T) {
	suite.Run(t, new(CoverageTestSuite))
}

func (s *CoverageTestSuite) SetupTest() {
	s.chart = typechart.Fallback()
	s.policy = generation.Default()
	s.charmander = &pokemon.Member{ID: 4, Name: "charmander", Types: []pokemon.Type{pokemon.TypeFire}}
	s.squirtle = &pokemon.Member{ID: 7, Name: "squirtle", Types: []pokemon.Type{pokemon.TypeWater}}
	s.pikachu = &pokemon.Member{ID: 25, Name: "pikachu", Types: []pokemon.Type{pokemon.TypeElectric}}
	s.pidgey = &pokemon.Member{ID: 16, Name: "pidgey", Types: []pokemon.Type{pokemon.TypeNormal, pokemon.TypeFlying}}
	s.zubat = &pokemon.Member{ID: 41, Name: "zubat", Types: []pokemon.Type{pokemon.TypePoison, pokemon.TypeFlying}}
}

func (s *CoverageTestSuite) validTypes(gen pokemon.Generation) []pokemon.Type {
	return s.policy.ValidTypes(gen)
}

func (s *CoverageTestSuite) TestComputeCoversValidTypes() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.charmander})

	s.Len(coverage.Compute(s.chart, &team, s.validTypes(9)), 18)

	gen1 := coverage.Compute(s.chart, &team, s.validTypes(1))
	s.Len(gen1, 15)
	s.NotContains(gen1, pokemon.TypeFairy)
	s.NotContains(gen1, pokemon.TypeDark)
}

func (s *CoverageTestSuite) TestComputeUsesGivenTypes() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.charmander, s.squirtle})
	types := []pokemon.Type{pokemon.TypeWater, pokemon.TypeGrass}

	got := coverage.Compute(s.chart, &team, types)
	s.Len(got, 2)
	s.Contains(got, pokemon.TypeGrass)
	s.Contains(got, pokemon.TypeWater)

	summaries := coverage.DefensiveSummary(s.chart, &team, types)
	s.Require().Len(summaries, 2)
	s.Equal(pokemon.TypeWater, summaries[0].Type)
	s.Equal(pokemon.TypeGrass, summaries[1].Type)

	s.Empty(coverage.Compute(s.chart, &team, nil))
	s.Empty(coverage.DefensiveSummary(s.chart, &team, nil))
}

func (s *CoverageTestSuite) TestStrongMemberAndIrrelevantMember() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.charmander, nil, s.squirtle, s.pikachu})

	got := coverage.Compute(s.chart, &team, s.validTypes(9))[pokemon.TypeGrass]

	expected := &coverage.Entry{
		Type:  pokemon.TypeGrass,
		Level: coverage.LevelStrong,
		Members: []coverage.MemberCoverage{
			{
				Slot:   0,
				Member: s.charmander,
				Level:  coverage.LevelStrong,
				Reasons: []string{
					"Fire attacks are super effective vs Grass",
					"Resists Grass (0.5x)",
				},
			},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		s.Fail("coverage mismatch (-want +got)", diff)
	}
}

func (s *CoverageTestSuite) TestUpgradeResetsMembers() {
	// ground: charmander is weak, squirtle hits it super effectively, pidgey and zubat are immune
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.charmander, s.squirtle, s.pidgey, s.pikachu, s.zubat})

	got := coverage.Compute(s.chart, &team, s.validTypes(9))[pokemon.TypeGround]

	expected := &coverage.Entry{
		Type:  pokemon.TypeGround,
		Level: coverage.LevelStrong,
		Members: []coverage.MemberCoverage{
			{Slot: 2, Member: s.pidgey, Level: coverage.LevelStrong, Reasons: []string{"Immune to Ground"}},
			{Slot: 4, Member: s.zubat, Level: coverage.LevelStrong, Reasons: []string{"Immune to Ground"}},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		s.Fail("coverage mismatch (-want +got)", diff)
	}
}

func (s *CoverageTestSuite) TestIntermediateLevel() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.charmander, s.squirtle, s.pikachu})

	got := coverage.Compute(s.chart, &team, s.validTypes(9))[pokemon.TypeGround]

	s.Equal(coverage.LevelNormal, got.Level)
	s.Require().Len(got.Members, 1)
	s.Equal(s.squirtle, got.Members[0].Member)
	s.Equal([]string{"Water attacks are super effective vs Ground"}, got.Members[0].Reasons)
}

func (s *CoverageTestSuite) TestEqualLevelsAccumulate() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.squirtle, s.pidgey})

	got := coverage.Compute(s.chart, &team, s.validTypes(9))[pokemon.TypeElectric]

	s.Equal(coverage.LevelWeak, got.Level)
	s.Require().Len(got.Members, 2)
	s.Equal([]string{"Weak to Electric (2x)"}, got.Members[0].Reasons)
	s.Equal(1, got.Members[1].Slot)
}

func (s *CoverageTestSuite) TestDualTypeReasons() {
	charizard := &pokemon.Member{ID: 6, Name: "charizard", Types: []pokemon.Type{pokemon.TypeFire, pokemon.TypeFlying}}
	team := pokemon.TeamFromSlice([]*pokemon.Member{charizard})

	got := coverage.Compute(s.chart, &team, s.validTypes(9))[pokemon.TypeGrass]

	s.Equal(coverage.LevelStrong, got.Level)
	s.Equal([]string{
		"Fire attacks are super effective vs Grass",
		"Flying attacks are super effective vs Grass",
		"Resists Grass (0.25x)",
	}, got.Members[0].Reasons)
	s.Len(coverage.DisplayReasons(got.Members[0].Reasons), 2)
	s.Len(got.Members[0].Reasons, 3, "underlying reasons stay uncapped")
}

func (s *CoverageTestSuite) TestEmptyTeam() {
	var team pokemon.Team
	for _, entry := range coverage.Compute(s.chart, &team, s.validTypes(9)) {
		s.Equal(coverage.LevelNone, entry.Level)
		s.Empty(entry.Members)
	}

	for _, entry := range coverage.Compute(s.chart, nil, s.validTypes(9)) {
		s.Equal(coverage.LevelNone, entry.Level)
	}
}

func (s *CoverageTestSuite) TestDisplayReasons() {
	s.Equal([]string{"a", "b"}, coverage.DisplayReasons([]string{"a", "b", "c"}))
	s.Equal([]string{"a"}, coverage.DisplayReasons([]string{"a"}))
	s.Nil(coverage.DisplayReasons(nil))
}

func (s *CoverageTestSuite) TestFormatMultiplier() {
	s.Equal("0.25x", coverage.FormatMultiplier(0.25))
	s.Equal("4x", coverage.FormatMultiplier(4))
	s.Equal("0.5x", coverage.FormatMultiplier(0.5))
}

func (s *CoverageTestSuite) TestLevelString() {
	s.Equal("none", coverage.LevelNone.String())
	s.Equal("weak", coverage.LevelWeak.String())
	s.Equal("normal", coverage.LevelNormal.String())
	s.Equal("strong", coverage.LevelStrong.String())
}

func (s *CoverageTestSuite) TestDefensiveSummary() {
	team := pokemon.TeamFromSlice([]*pokemon.Member{s.squirtle, s.pikachu, s.pidgey})

	summaries := coverage.DefensiveSummary(s.chart, &team, s.validTypes(9))
	s.Len(summaries, 18)

	byType := make(map[pokemon.Type]coverage.Summary, len(summaries))
	for _, summary := range summaries {
		byType[summary.Type] = summary
	}

	s.Equal(coverage.Summary{Type: pokemon.TypeGround, Weak: 1, Immune: 1}, byType[pokemon.TypeGround])

	electric := byType[pokemon.TypeElectric]
	s.Equal(coverage.Summary{Type: pokemon.TypeElectric, Weak: 2, Resistant: 1}, electric)
	s.True(electric.Exposed())
	s.False(byType[pokemon.TypeGround].Exposed())
}

package effectiveness_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/engine/effectiveness"
	"github.com/KirkDiggler/poketeam-api/internal/engine/typechart"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

type EffectivenessTestSuite struct {
	suite.Suite
	chart *typechart.Chart
}

func TestEffectivenessTestSuite(t *testing.T) {
	suite.Run(t, new(EffectivenessTestSuite))
}

func (s *EffectivenessTestSuite) SetupTest() {
	s.chart = typechart.Fallback()
}

func (s *EffectivenessTestSuite) TestImmunity() {
	got := effectiveness.DualTypeDefense(s.chart, pokemon.TypeElectric, []pokemon.Type{pokemon.TypeGround})

	s.Equal(0.0, got.Multiplier)
	s.True(got.IsImmune)
	s.Equal(0, got.ResistingTypeCount)
	s.False(got.Resists())
}

func (s *EffectivenessTestSuite) TestImmunityOverridesOtherType() {
	// water/ground takes 0 from electric even though water alone is weak
	got := effectiveness.DualTypeDefense(s.chart, pokemon.TypeElectric,
		[]pokemon.Type{pokemon.TypeWater, pokemon.TypeGround})

	s.Equal(0.0, got.Multiplier)
	s.True(got.IsImmune)
	s.False(got.Weak())
}

func (s *EffectivenessTestSuite) TestDoubleResistWithFixtureChart() {
	fixture := typechart.New()
	s.Require().NoError(fixture.Set(pokemon.TypeFire, pokemon.TypeGrass, 0.5))
	s.Require().NoError(fixture.Set(pokemon.TypeFire, pokemon.TypePoison, 0.5))

	got := effectiveness.DualTypeDefense(fixture, pokemon.TypeFire,
		[]pokemon.Type{pokemon.TypeGrass, pokemon.TypePoison})

	s.Equal(0.25, got.Multiplier)
	s.False(got.IsImmune)
	s.Equal(2, got.ResistingTypeCount)
	s.True(got.Resists())
}

func (s *EffectivenessTestSuite) TestCanonicalDoubleResist() {
	got := effectiveness.DualTypeDefense(s.chart, pokemon.TypeGrass,
		[]pokemon.Type{pokemon.TypeFire, pokemon.TypeDragon})

	s.Equal(0.25, got.Multiplier)
	s.False(got.IsImmune)
	s.Equal(2, got.ResistingTypeCount)
}

func (s *EffectivenessTestSuite) TestResistanceCancelledByWeakness() {
	// fire vs water/grass: 0.5 from water, 2 from grass
	got := effectiveness.DualTypeDefense(s.chart, pokemon.TypeFire,
		[]pokemon.Type{pokemon.TypeWater, pokemon.TypeGrass})

	s.Equal(1.0, got.Multiplier)
	s.Equal(1, got.ResistingTypeCount)
	s.False(got.Resists())
	s.False(got.Weak())
}

func (s *EffectivenessTestSuite) TestDoubleWeakness() {
	got := effectiveness.DualTypeDefense(s.chart, pokemon.TypeIce,
		[]pokemon.Type{pokemon.TypeGrass, pokemon.TypeGround})

	s.Equal(4.0, got.Multiplier)
	s.True(got.Weak())
}

func (s *EffectivenessTestSuite) TestNoDefenders() {
	got := effectiveness.DualTypeDefense(s.chart, pokemon.TypeFire, nil)
	s.Equal(effectiveness.Defense{Multiplier: 1}, got)
}

func (s *EffectivenessTestSuite) TestSuperEffective() {
	s.True(effectiveness.SuperEffective(s.chart, pokemon.TypeWater, pokemon.TypeFire))
	s.False(effectiveness.SuperEffective(s.chart, pokemon.TypeFire, pokemon.TypeWater))
	s.False(effectiveness.SuperEffective(s.chart, pokemon.TypeNormal, pokemon.TypeFire))

	s.Equal([]pokemon.Type{pokemon.TypeGround},
		effectiveness.SuperEffectiveTypes(s.chart,
			[]pokemon.Type{pokemon.TypeNormal, pokemon.TypeGround}, pokemon.TypeFire))
	s.Empty(effectiveness.SuperEffectiveTypes(s.chart,
		[]pokemon.Type{pokemon.TypeNormal}, pokemon.TypeFire))
}

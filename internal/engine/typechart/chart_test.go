package typechart_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/poketeam-api/internal/engine/typechart"
	typechartmock "github.com/KirkDiggler/poketeam-api/internal/engine/typechart/mock"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

type ChartTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSource *typechartmock.MockSource
	ctx        context.Context
}

func TestChartTestSuite(t *testing.T) {
	suite.Run(t, new(ChartTestSuite))
}

func (s *ChartTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = typechartmock.NewMockSource(s.ctrl)
	s.ctx = context.Background()
}

func (s *ChartTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChartTestSuite) TestFallbackCanonicalMatchups() {
	chart := typechart.Fallback()

	testCases := []struct {
		attack   pokemon.Type
		defend   pokemon.Type
		expected float64
	}{
		{pokemon.TypeFire, pokemon.TypeGrass, 2},
		{pokemon.TypeWater, pokemon.TypeFire, 2},
		{pokemon.TypeElectric, pokemon.TypeGround, 0},
		{pokemon.TypeGhost, pokemon.TypeNormal, 0},
		{pokemon.TypeDragon, pokemon.TypeFairy, 0},
		{pokemon.TypeFairy, pokemon.TypeDragon, 2},
		{pokemon.TypeSteel, pokemon.TypeFairy, 2},
		{pokemon.TypePoison, pokemon.TypeSteel, 0},
		{pokemon.TypeGround, pokemon.TypeFlying, 0},
		{pokemon.TypePsychic, pokemon.TypeDark, 0},
		{pokemon.TypeFighting, pokemon.TypeGhost, 0},
		{pokemon.TypeNormal, pokemon.TypeGhost, 0},
		{pokemon.TypeGrass, pokemon.TypeFire, 0.5},
		{pokemon.TypeBug, pokemon.TypeFairy, 0.5},
		{pokemon.TypeIce, pokemon.TypeDragon, 2},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("%s vs %s", tc.attack, tc.defend), func() {
			s.Equal(tc.expected, chart.Effectiveness(tc.attack, tc.defend))
		})
	}
	s.True(chart.IsFallback())
}

func (s *ChartTestSuite) TestAbsentPairsAreNormal() {
	chart := typechart.Fallback()

	for _, attack := range pokemon.AllTypes {
		for _, defend := range pokemon.AllTypes {
			if chart.Has(attack, defend) {
				continue
			}
			s.Equal(1.0, chart.Effectiveness(attack, defend), "%s -> %s", attack, defend)
		}
	}
}

func (s *ChartTestSuite) TestFallbackCoversAllTypes() {
	chart := typechart.Fallback()
	s.Equal(pokemon.AllTypes, chart.AttackingTypes())
}

func (s *ChartTestSuite) TestStoredValuesAreSingleMultipliers() {
	chart := typechart.Fallback()
	for _, attack := range pokemon.AllTypes {
		for _, defend := range pokemon.AllTypes {
			s.Contains([]float64{0, 0.5, 1, 2}, chart.Effectiveness(attack, defend))
		}
	}
}

func (s *ChartTestSuite) TestSetRejectsCombinedMultipliers() {
	chart := typechart.New()

	s.Error(chart.Set(pokemon.TypeFire, pokemon.TypeGrass, 4))
	s.Error(chart.Set(pokemon.TypeFire, pokemon.TypeGrass, 0.25))
	s.NoError(chart.Set(pokemon.TypeFire, pokemon.TypeGrass, 2))
	s.Equal(1, chart.Len())
}

func (s *ChartTestSuite) TestNilChartIsNormal() {
	var chart *typechart.Chart
	s.Equal(1.0, chart.Effectiveness(pokemon.TypeFire, pokemon.TypeGrass))
	s.False(chart.IsFallback())
}

func (s *ChartTestSuite) TestLoad() {
	s.Run("loads relations and skips failed types", func() {
		types := []pokemon.Type{pokemon.TypeFire, pokemon.TypeWater, pokemon.TypeElectric}

		s.mockSource.EXPECT().
			GetTypeRelations(gomock.Any(), pokemon.TypeFire).
			Return(&pokemon.TypeRelations{
				Type:           pokemon.TypeFire,
				DoubleDamageTo: []pokemon.Type{pokemon.TypeGrass},
				HalfDamageTo:   []pokemon.Type{pokemon.TypeWater},
			}, nil)
		s.mockSource.EXPECT().
			GetTypeRelations(gomock.Any(), pokemon.TypeWater).
			Return(nil, fmt.Errorf("connection reset"))
		s.mockSource.EXPECT().
			GetTypeRelations(gomock.Any(), pokemon.TypeElectric).
			Return(&pokemon.TypeRelations{
				NoDamageTo: []pokemon.Type{pokemon.TypeGround},
			}, nil)

		chart := typechart.Load(s.ctx, &typechart.LoadConfig{Source: s.mockSource}, types)

		s.False(chart.IsFallback())
		s.Equal(1.0, chart.Effectiveness(pokemon.TypeFire, pokemon.TypeGrass), "grass is not a requested type")
		s.Equal(0.5, chart.Effectiveness(pokemon.TypeFire, pokemon.TypeWater))
		s.Equal(1.0, chart.Effectiveness(pokemon.TypeWater, pokemon.TypeFire), "failed type has no entries")
		s.Equal(1.0, chart.Effectiveness(pokemon.TypeElectric, pokemon.TypeGround), "ground is not a requested type")
	})

	s.Run("filters defending types outside the generation", func() {
		types := []pokemon.Type{pokemon.TypeSteel, pokemon.TypeIce}

		s.mockSource.EXPECT().
			GetTypeRelations(gomock.Any(), pokemon.TypeSteel).
			Return(&pokemon.TypeRelations{
				Type:           pokemon.TypeSteel,
				DoubleDamageTo: []pokemon.Type{pokemon.TypeIce, pokemon.TypeFairy},
			}, nil)
		s.mockSource.EXPECT().
			GetTypeRelations(gomock.Any(), pokemon.TypeIce).
			Return(&pokemon.TypeRelations{Type: pokemon.TypeIce}, nil)

		chart := typechart.Load(s.ctx, &typechart.LoadConfig{Source: s.mockSource}, types)

		s.Equal(2.0, chart.Effectiveness(pokemon.TypeSteel, pokemon.TypeIce))
		s.False(chart.Has(pokemon.TypeSteel, pokemon.TypeFairy))
	})

	s.Run("falls back when every fetch fails", func() {
		types := []pokemon.Type{pokemon.TypeFire, pokemon.TypeWater}

		s.mockSource.EXPECT().
			GetTypeRelations(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("unavailable")).
			Times(2)

		chart := typechart.Load(s.ctx, &typechart.LoadConfig{Source: s.mockSource}, types)

		s.True(chart.IsFallback())
		s.Equal(2.0, chart.Effectiveness(pokemon.TypeFire, pokemon.TypeGrass))
	})

	s.Run("falls back without a source", func() {
		chart := typechart.Load(s.ctx, &typechart.LoadConfig{}, pokemon.AllTypes)
		s.True(chart.IsFallback())

		chart = typechart.Load(s.ctx, nil, pokemon.AllTypes)
		s.True(chart.IsFallback())
	})
}

package teambuilder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/engine/coverage"
	"github.com/KirkDiggler/poketeam-api/internal/engine/generation"
	"github.com/KirkDiggler/poketeam-api/internal/engine/matchup"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

func (o *orchestrator) LoadTypeChart(ctx context.Context, _ *LoadTypeChartInput) (*LoadTypeChartOutput, error) {
	chart := o.typeChart(ctx)

	out := &LoadTypeChartOutput{
		AttackingTypes: len(chart.AttackingTypes()),
		FallbackChart:  chart.IsFallback(),
	}
	o.logger.Info("type chart ready",
		zap.Int("attacking_types", out.AttackingTypes),
		zap.Bool("fallback", out.FallbackChart))
	return out, nil
}

func (o *orchestrator) GetCoverage(ctx context.Context, input *GetCoverageInput) (*GetCoverageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	gen, err := o.resolveGeneration(input.Generation)
	if err != nil {
		return nil, err
	}

	chart := o.typeChart(ctx)
	t := o.normalizeTeam(input.Team, gen)

	validTypes := o.policy.ValidTypes(gen)
	byType := coverage.Compute(chart, &t, validTypes)
	entries := make([]*coverage.Entry, 0, len(validTypes))
	for _, vt := range validTypes {
		entries = append(entries, byType[vt])
	}

	return &GetCoverageOutput{
		Generation:    gen,
		Team:          t,
		Entries:       entries,
		Defensive:     coverage.DefensiveSummary(chart, &t, validTypes),
		FallbackChart: chart.IsFallback(),
	}, nil
}

func (o *orchestrator) Recommend(ctx context.Context, input *RecommendInput) (*RecommendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	gen, err := o.resolveGeneration(input.Generation)
	if err != nil {
		return nil, err
	}

	opponent, err := o.opponentTypes(ctx, input, gen)
	if err != nil {
		return nil, err
	}

	t := o.normalizeTeam(input.Team, gen)
	scores := matchup.Recommend(o.typeChart(ctx), &t, opponent)

	o.logger.Debug("computed matchup",
		zap.Strings("opponent", typeNames(opponent)),
		zap.Int("generation", int(gen)),
		zap.Int("members", len(scores)))

	return &RecommendOutput{
		Generation:    gen,
		OpponentTypes: opponent,
		Scores:        scores,
	}, nil
}

// opponentTypes resolves the opponent's typing for the generation, looking the
// opponent up by name when no types were given
func (o *orchestrator) opponentTypes(ctx context.Context, input *RecommendInput, gen pokemon.Generation) ([]pokemon.Type, error) {
	var types []pokemon.Type
	switch {
	case len(input.OpponentTypes) > 0:
		for _, t := range knownTypes(input.OpponentTypes) {
			if generation.TypeAvailable(t, gen) {
				types = append(types, t)
			}
		}
	case strings.TrimSpace(input.OpponentName) != "":
		species, err := o.pokeAPI.GetPokemon(ctx, input.OpponentName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up opponent %s", input.OpponentName)
		}
		types = o.policy.TypesForSpecies(species.SpeciesID, gen, species.Types)
	default:
		return nil, errors.InvalidArgument("opponent name or types are required")
	}

	if len(types) == 0 {
		return nil, errors.InvalidArgumentf("opponent has no types in generation %d", gen)
	}
	if len(types) > 2 {
		return nil, errors.InvalidArgument("opponent can have at most two types")
	}
	return types, nil
}

func typeNames(types []pokemon.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

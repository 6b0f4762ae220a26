package teambuilder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

// Location sources
const (
	LocationSourcePokeAPI = "pokeapi"
	LocationSourceWiki    = "wiki"
)

const speciesListLimit = 2000

func (o *orchestrator) LookupPokemon(ctx context.Context, input *LookupPokemonInput) (*LookupPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	gen, err := o.resolveGeneration(input.Generation)
	if err != nil {
		return nil, err
	}

	species, err := o.pokeAPI.GetPokemon(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up %s", input.Name)
	}

	detail := &PokemonDetail{
		ID:         species.ID,
		SpeciesID:  species.SpeciesID,
		Name:       species.Name,
		SpriteURL:  species.SpriteURL,
		Generation: gen,
		Types:      o.policy.TypesForSpecies(species.SpeciesID, gen, species.Types),
		Stats:      species.Stats,
		Moves:      o.movesInScope(species.Moves, gen),
		Abilities:  make([]Ability, len(species.Abilities)),
		Evolution:  []EvolutionStep{},
		Locations:  []pokemon.LocationEncounter{},
	}
	if detail.Stats == nil {
		detail.Stats = map[string]int{}
	}

	// supplementary data is best effort: a failed fetch is logged and left empty
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		chain, err := o.pokeAPI.GetEvolutionChain(egCtx, species.SpeciesID)
		if err != nil {
			o.logger.Warn("failed to load evolution chain",
				zap.String("pokemon", species.Name),
				zap.Error(err))
			return nil
		}
		detail.Evolution = o.evolutionSteps(chain, gen)
		return nil
	})

	eg.Go(func() error {
		detail.Locations, detail.LocationSource = o.locations(egCtx, species, gen)
		return nil
	})

	for i, ref := range species.Abilities {
		i, ref := i, ref
		detail.Abilities[i] = Ability{Name: ref.Name, IsHidden: ref.IsHidden}
		eg.Go(func() error {
			ability, err := o.pokeAPI.GetAbility(egCtx, ref.Name)
			if err != nil {
				o.logger.Warn("failed to load ability",
					zap.String("ability", ref.Name),
					zap.Error(err))
				return nil
			}
			detail.Abilities[i].Effect = ability.Effect
			return nil
		})
	}

	_ = eg.Wait() //nolint:errcheck // every task swallows its own error

	return &LookupPokemonOutput{Pokemon: detail}, nil
}

// locations lists encounters for the generation's versions, falling back to
// the wiki when PokeAPI has none
func (o *orchestrator) locations(ctx context.Context, species *pokemon.Species, gen pokemon.Generation) ([]pokemon.LocationEncounter, string) {
	inScope := []pokemon.LocationEncounter{}

	encounters, err := o.pokeAPI.GetEncounters(ctx, species.ID)
	if err != nil {
		o.logger.Warn("failed to load encounters",
			zap.String("pokemon", species.Name),
			zap.Error(err))
	}
	for _, e := range encounters {
		if o.policy.VersionInScope(e.Version, gen) {
			inScope = append(inScope, e)
		}
	}
	if len(inScope) > 0 {
		return inScope, LocationSourcePokeAPI
	}

	if o.wiki == nil {
		return inScope, ""
	}

	supplementary, err := o.wiki.LookupSupplementaryLocations(ctx, species.Name, gen)
	if err != nil || len(supplementary) == 0 {
		if err != nil {
			o.logger.Warn("wiki location lookup failed",
				zap.String("pokemon", species.Name),
				zap.Error(err))
		}
		return inScope, ""
	}
	return supplementary, LocationSourceWiki
}

// movesInScope merges the learn entries of the generation's version groups
// into one move per name. Level-up moves come first by level, then the rest by name.
func (o *orchestrator) movesInScope(learns []pokemon.MoveLearn, gen pokemon.Generation) []Move {
	byName := make(map[string]*Move)
	var order []string

	for _, l := range learns {
		if !o.policy.VersionGroupInScope(l.VersionGroup, gen) {
			continue
		}
		m, ok := byName[l.Move]
		if !ok {
			m = &Move{Name: l.Move}
			byName[l.Move] = m
			order = append(order, l.Move)
		}
		if l.Method != "" && !contains(m.Methods, l.Method) {
			m.Methods = append(m.Methods, l.Method)
		}
		if l.Method == "level-up" && l.Level > 0 && (m.Level == 0 || l.Level < m.Level) {
			m.Level = l.Level
		}
	}

	moves := make([]Move, 0, len(order))
	for _, name := range order {
		moves = append(moves, *byName[name])
	}
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		switch {
		case a.Level > 0 && b.Level > 0:
			if a.Level != b.Level {
				return a.Level < b.Level
			}
			return a.Name < b.Name
		case a.Level > 0:
			return true
		case b.Level > 0:
			return false
		default:
			return a.Name < b.Name
		}
	})
	return moves
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

// evolutionSteps flattens the chain depth first. An evolution whose every
// method is unavailable in the generation is dropped along with what follows it.
func (o *orchestrator) evolutionSteps(root *pokemon.EvolutionNode, gen pokemon.Generation) []EvolutionStep {
	steps := []EvolutionStep{}
	if root == nil {
		return steps
	}

	var walk func(node *pokemon.EvolutionNode)
	walk = func(node *pokemon.EvolutionNode) {
		for _, next := range node.EvolvesTo {
			requirements := []string{}
			available := 0
			for _, d := range next.Details {
				if !o.policy.TriggerAvailable(d.Trigger, gen) {
					continue
				}
				available++
				if req := Requirement(d); req != "" && !contains(requirements, req) {
					requirements = append(requirements, req)
				}
			}
			if len(next.Details) > 0 && available == 0 {
				continue
			}

			steps = append(steps, EvolutionStep{
				From:         node.Species,
				To:           next.Species,
				ToSpeciesID:  next.SpeciesID,
				Requirements: requirements,
			})
			walk(next)
		}
	}
	walk(root)

	return steps
}

// Requirement renders an evolution method for display, e.g. "Level 16" or
// "Level up, with high friendship, during the day"
func Requirement(d pokemon.EvolutionDetail) string {
	var parts []string

	switch d.Trigger {
	case "":
	case "level-up":
		if d.MinLevel > 0 {
			parts = append(parts, fmt.Sprintf("Level %d", d.MinLevel))
		} else {
			parts = append(parts, "Level up")
		}
	case "use-item":
		if d.Item != "" {
			parts = append(parts, "Use "+DisplayName(d.Item))
		} else {
			parts = append(parts, "Use item")
		}
	case "trade":
		parts = append(parts, "Trade")
	default:
		parts = append(parts, DisplayName(d.Trigger))
	}

	if d.Trigger != "level-up" && d.MinLevel > 0 {
		parts = append(parts, fmt.Sprintf("from level %d", d.MinLevel))
	}
	if d.HeldItem != "" {
		parts = append(parts, "holding "+DisplayName(d.HeldItem))
	}
	if d.KnownMove != "" {
		parts = append(parts, "knowing "+DisplayName(d.KnownMove))
	}
	if d.MinHappiness > 0 {
		parts = append(parts, "with high friendship")
	}
	switch d.TimeOfDay {
	case "day":
		parts = append(parts, "during the day")
	case "night":
		parts = append(parts, "at night")
	case "dusk":
		parts = append(parts, "at dusk")
	}
	if d.Location != "" {
		parts = append(parts, "at "+DisplayName(d.Location))
	}

	return strings.Join(parts, ", ")
}

// DisplayName turns an API slug such as "water-stone" into "Water Stone"
func DisplayName(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (o *orchestrator) LookupMove(ctx context.Context, input *LookupMoveInput) (*LookupMoveOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("move name is required")
	}

	move, err := o.pokeAPI.GetMove(ctx, strings.ToLower(strings.TrimSpace(input.Name)))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up move %s", input.Name)
	}
	return &LookupMoveOutput{Move: move}, nil
}

func (o *orchestrator) ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error) {
	if input == nil {
		input = &ListSpeciesInput{}
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	names, err := o.pokeAPI.ListSpecies(ctx, speciesListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	prefix := strings.ToLower(strings.TrimSpace(input.Prefix))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		out = append(out, name)
		if input.Limit > 0 && len(out) == input.Limit {
			break
		}
	}
	return &ListSpeciesOutput{Names: out}, nil
}

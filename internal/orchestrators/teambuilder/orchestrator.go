// Package teambuilder implements the team builder operations: coverage and
// matchup analysis, pokemon lookup, accounts, saved teams and builder snapshots
package teambuilder

//go:generate mockgen -destination=mock/mock_service.go -package=teambuildermock github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder Service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	"github.com/KirkDiggler/poketeam-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/poketeam-api/internal/clients/wiki"
	"github.com/KirkDiggler/poketeam-api/internal/engine/generation"
	"github.com/KirkDiggler/poketeam-api/internal/engine/typechart"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/team"
)

// Service defines the team builder operations
type Service interface {
	// LoadTypeChart loads the type chart ahead of the first analysis request
	LoadTypeChart(ctx context.Context, input *LoadTypeChartInput) (*LoadTypeChartOutput, error)

	// Analysis
	GetCoverage(ctx context.Context, input *GetCoverageInput) (*GetCoverageOutput, error)
	Recommend(ctx context.Context, input *RecommendInput) (*RecommendOutput, error)

	// Lookup
	LookupPokemon(ctx context.Context, input *LookupPokemonInput) (*LookupPokemonOutput, error)
	LookupMove(ctx context.Context, input *LookupMoveInput) (*LookupMoveOutput, error)
	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)

	// Accounts
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	SignOut(ctx context.Context, input *SignOutInput) (*SignOutOutput, error)
	CurrentUser(ctx context.Context, input *CurrentUserInput) (*CurrentUserOutput, error)
	DeleteAccount(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error)

	// Saved teams
	SaveTeam(ctx context.Context, input *SaveTeamInput) (*SaveTeamOutput, error)
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)
	DeleteTeam(ctx context.Context, input *DeleteTeamInput) (*DeleteTeamOutput, error)

	// Builder state
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error)
}

// Config holds the dependencies for the team builder orchestrator
type Config struct {
	PokeAPI   pokeapi.Client
	Auth      auth.Provider
	TeamRepo  team.Repository
	Snapshots snapshot.Repository

	// Wiki is consulted for locations PokeAPI lacks; nil disables it
	Wiki wiki.Client
	// Chart skips loading the type chart from PokeAPI when set
	Chart *typechart.Chart
	// ChartConcurrency caps parallel type fetches when loading the chart
	ChartConcurrency int
	// Policy defaults to the built-in generation tables
	Policy *generation.Policy
	// DefaultGeneration applies when a request leaves the generation unset
	DefaultGeneration pokemon.Generation
	Logger            *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PokeAPI == nil {
		vb.RequiredField("PokeAPI")
	}
	if c.Auth == nil {
		vb.RequiredField("Auth")
	}
	if c.TeamRepo == nil {
		vb.RequiredField("TeamRepo")
	}
	if c.Snapshots == nil {
		vb.RequiredField("Snapshots")
	}
	if c.DefaultGeneration != 0 {
		if err := c.DefaultGeneration.Validate(); err != nil {
			vb.InvalidField("DefaultGeneration", err.Error())
		}
	}

	return vb.Build()
}

type orchestrator struct {
	pokeAPI    pokeapi.Client
	wiki       wiki.Client
	auth       auth.Provider
	teamRepo   team.Repository
	snapshots  snapshot.Repository
	policy     *generation.Policy
	defaultGen pokemon.Generation
	logger     *zap.Logger

	chartMu          sync.Mutex
	chart            *typechart.Chart
	chartConcurrency int
}

// NewOrchestrator creates a new team builder orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	policy := cfg.Policy
	if policy == nil {
		policy = generation.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		pokeAPI:    cfg.PokeAPI,
		wiki:       cfg.Wiki,
		auth:       cfg.Auth,
		teamRepo:   cfg.TeamRepo,
		snapshots:  cfg.Snapshots,
		policy:     policy,
		defaultGen: cfg.DefaultGeneration.OrLatest(),
		logger:     logger,
		chart:      cfg.Chart,

		chartConcurrency: cfg.ChartConcurrency,
	}, nil
}

// typeChart returns the chart, loading it from PokeAPI on first use. The
// loader falls back to the built-in chart, so this never fails.
//
// The chart is kept for the life of the process, so the load must not end
// with the request that triggered it. Fetches are bounded by the PokeAPI
// client timeout instead.
func (o *orchestrator) typeChart(ctx context.Context) *typechart.Chart {
	o.chartMu.Lock()
	defer o.chartMu.Unlock()

	if o.chart == nil {
		o.chart = typechart.Load(context.WithoutCancel(ctx), &typechart.LoadConfig{
			Source:      o.pokeAPI,
			Logger:      o.logger,
			Concurrency: o.chartConcurrency,
		}, pokemon.AllTypes)
	}
	return o.chart
}

// resolveGeneration applies the default and validates the result
func (o *orchestrator) resolveGeneration(gen pokemon.Generation) (pokemon.Generation, error) {
	if gen == 0 {
		return o.defaultGen, nil
	}
	if err := gen.Validate(); err != nil {
		return 0, errors.InvalidArgument(err.Error()).WithMeta("generation", int(gen))
	}
	return gen, nil
}

// normalizeTeam copies the team with every member's types as of the generation
func (o *orchestrator) normalizeTeam(t pokemon.Team, gen pokemon.Generation) pokemon.Team {
	var out pokemon.Team
	for i, m := range t {
		if m == nil {
			continue
		}
		member := *m
		member.Types = o.policy.TypesForSpecies(m.ID, gen, knownTypes(m.Types))
		out[i] = &member
	}
	return out
}

// knownTypes drops identifiers outside the 18 mainline types
func knownTypes(types []pokemon.Type) []pokemon.Type {
	out := make([]pokemon.Type, 0, len(types))
	for _, t := range types {
		if t.IsKnown() {
			out = append(out, t)
		}
	}
	return out
}

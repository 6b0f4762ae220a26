package teambuilder

import (
	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	"github.com/KirkDiggler/poketeam-api/internal/engine/coverage"
	"github.com/KirkDiggler/poketeam-api/internal/engine/matchup"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot"
)

// LoadTypeChartInput defines the request for loading the type chart
type LoadTypeChartInput struct{}

// LoadTypeChartOutput describes the chart in use
type LoadTypeChartOutput struct {
	// AttackingTypes counts the types with at least one stored relation
	AttackingTypes int
	// FallbackChart is set when the built-in chart was used
	FallbackChart bool
}

// GetCoverageInput defines the request for team type coverage
type GetCoverageInput struct {
	Team pokemon.Team
	// Generation defaults to the configured generation when zero
	Generation pokemon.Generation
}

// GetCoverageOutput defines the response for team type coverage
type GetCoverageOutput struct {
	Generation pokemon.Generation
	// Team holds the members with types adjusted for the generation
	Team pokemon.Team
	// Entries has one entry per type valid in the generation, in display order
	Entries   []*coverage.Entry
	Defensive []coverage.Summary
	// FallbackChart is set when the built-in chart was used
	FallbackChart bool
}

// RecommendInput defines the request for matchup recommendations. The
// opponent is given either by name or by its types.
type RecommendInput struct {
	Team          pokemon.Team
	OpponentName  string
	OpponentTypes []pokemon.Type
	Generation    pokemon.Generation
}

// RecommendOutput defines the response for matchup recommendations
type RecommendOutput struct {
	Generation    pokemon.Generation
	OpponentTypes []pokemon.Type
	Scores        []matchup.Score
}

// LookupPokemonInput defines the request for a pokemon lookup
type LookupPokemonInput struct {
	Name       string
	Generation pokemon.Generation
}

// LookupPokemonOutput defines the response for a pokemon lookup
type LookupPokemonOutput struct {
	Pokemon *PokemonDetail
}

// PokemonDetail is everything the lookup view shows for one pokemon
type PokemonDetail struct {
	ID         int
	SpeciesID  int
	Name       string
	SpriteURL  string
	Generation pokemon.Generation
	// Types are adjusted for the generation
	Types     []pokemon.Type
	Stats     map[string]int
	Abilities []Ability
	Moves     []Move
	Evolution []EvolutionStep
	Locations []pokemon.LocationEncounter
	// LocationSource is "pokeapi", "wiki" or empty when nothing was found
	LocationSource string
}

// Member returns the team slot snapshot for the lookup result
func (d *PokemonDetail) Member() *pokemon.Member {
	stats := make(map[string]int, len(d.Stats))
	for k, v := range d.Stats {
		stats[k] = v
	}
	return &pokemon.Member{
		ID:        d.ID,
		Name:      d.Name,
		SpriteURL: d.SpriteURL,
		Types:     append([]pokemon.Type(nil), d.Types...),
		Stats:     stats,
	}
}

// Ability is an ability with its description, empty when it could not be fetched
type Ability struct {
	Name     string
	IsHidden bool
	Effect   string
}

// Move is a move learnable in the generation. Level is the lowest level-up
// level across the generation's version groups.
type Move struct {
	Name    string
	Methods []string
	Level   int
}

// EvolutionStep is one edge of the evolution chain
type EvolutionStep struct {
	From        string
	To          string
	ToSpeciesID int
	// Requirements lists each way the evolution can happen; empty when the
	// source gives no details
	Requirements []string
}

// LookupMoveInput defines the request for move details
type LookupMoveInput struct {
	Name string
}

// LookupMoveOutput defines the response for move details
type LookupMoveOutput struct {
	Move *pokemon.MoveDetail
}

// ListSpeciesInput defines the request for species search
type ListSpeciesInput struct {
	// Prefix filters names case-insensitively
	Prefix string
	// Limit caps the result; zero returns everything
	Limit int
}

// ListSpeciesOutput defines the response for species search
type ListSpeciesOutput struct {
	Names []string
}

// SignInInput defines the request for signing in
type SignInInput struct {
	// Credential is an ID token from the identity provider
	Credential string
}

// SignInOutput defines the response for signing in
type SignInOutput struct {
	Session *auth.Session
}

// SignOutInput defines the request for signing out
type SignOutInput struct {
	Token string
}

// SignOutOutput defines the response for signing out
type SignOutOutput struct{}

// CurrentUserInput defines the request for the signed-in user
type CurrentUserInput struct {
	Token string
}

// CurrentUserOutput defines the response for the signed-in user. Identity is
// nil when signed out.
type CurrentUserOutput struct {
	Identity *auth.Identity
}

// DeleteAccountInput defines the request for deleting an account
type DeleteAccountInput struct {
	Token string
}

// DeleteAccountOutput defines the response for deleting an account
type DeleteAccountOutput struct {
	DeletedTeams int
}

// SaveTeamInput defines the request for saving a team
type SaveTeamInput struct {
	UserID     string
	Name       string
	Team       pokemon.Team
	Generation pokemon.Generation
}

// SaveTeamOutput defines the response for saving a team
type SaveTeamOutput struct {
	Team *pokemon.TeamRecord
}

// ListTeamsInput defines the request for a user's saved teams
type ListTeamsInput struct {
	UserID string
}

// ListTeamsOutput defines the response for a user's saved teams, newest first
type ListTeamsOutput struct {
	Teams []*pokemon.TeamRecord
}

// DeleteTeamInput defines the request for deleting a saved team
type DeleteTeamInput struct {
	UserID string
	TeamID string
}

// DeleteTeamOutput defines the response for deleting a saved team
type DeleteTeamOutput struct{}

// SaveSnapshotInput defines the request for saving builder state
type SaveSnapshotInput struct {
	// UserID scopes Key to the signed-in caller; empty for anonymous callers
	UserID     string
	Key        string
	Team       pokemon.Team
	Generation pokemon.Generation
	Revision   int64
}

// SaveSnapshotOutput defines the response for saving builder state
type SaveSnapshotOutput struct {
	Snapshot *snapshot.Snapshot
}

// LoadSnapshotInput defines the request for restoring builder state
type LoadSnapshotInput struct {
	UserID string
	Key    string
}

// LoadSnapshotOutput defines the response for restoring builder state. When
// nothing could be restored Found is false and Snapshot holds an empty team.
type LoadSnapshotOutput struct {
	Snapshot *snapshot.Snapshot
	Found    bool
}

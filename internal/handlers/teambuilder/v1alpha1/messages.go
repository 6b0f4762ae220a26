package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Teams travel as a six element array with null for empty slots.

// GetCoverageRequest asks for the team's type coverage
type GetCoverageRequest struct {
	Team       pokemon.Team `json:"team"`
	Generation int          `json:"generation,omitempty"`
}

// GetCoverageResponse is the coverage table and defensive summary
type GetCoverageResponse struct {
	Generation    int                `json:"generation"`
	Team          pokemon.Team       `json:"team"`
	Entries       []CoverageEntry    `json:"entries"`
	Defensive     []DefensiveSummary `json:"defensive"`
	FallbackChart bool               `json:"fallback_chart"`
}

// CoverageEntry is the team's answer to one type
type CoverageEntry struct {
	Type    string           `json:"type"`
	Level   string           `json:"level"`
	Members []CoverageMember `json:"members"`
}

// CoverageMember is a member counted in a coverage entry
type CoverageMember struct {
	Slot    int      `json:"slot"`
	Name    string   `json:"name"`
	Level   string   `json:"level"`
	Reasons []string `json:"reasons"`
}

// DefensiveSummary counts members by how they take hits from one type
type DefensiveSummary struct {
	Type      string `json:"type"`
	Weak      int    `json:"weak"`
	Resistant int    `json:"resistant"`
	Immune    int    `json:"immune"`
	Exposed   bool   `json:"exposed"`
}

// RecommendRequest names the opponent by species or by types
type RecommendRequest struct {
	Team          pokemon.Team `json:"team"`
	OpponentName  string       `json:"opponent_name,omitempty"`
	OpponentTypes []string     `json:"opponent_types,omitempty"`
	Generation    int          `json:"generation,omitempty"`
}

// RecommendResponse ranks the team against the opponent, best first
type RecommendResponse struct {
	Generation      int              `json:"generation"`
	OpponentTypes   []string         `json:"opponent_types"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation is one member's score
type Recommendation struct {
	Slot    int      `json:"slot"`
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// LookupPokemonRequest looks a pokemon up by name or id
type LookupPokemonRequest struct {
	Name       string `json:"name"`
	Generation int    `json:"generation,omitempty"`
}

// LookupPokemonResponse holds the lookup view
type LookupPokemonResponse struct {
	Pokemon *Pokemon `json:"pokemon"`
}

// Pokemon is a pokemon as seen in one generation
type Pokemon struct {
	ID             int             `json:"id"`
	SpeciesID      int             `json:"species_id"`
	Name           string          `json:"name"`
	Sprite         string          `json:"sprite,omitempty"`
	Generation     int             `json:"generation"`
	Types          []string        `json:"types"`
	Stats          map[string]int  `json:"stats"`
	Abilities      []Ability       `json:"abilities"`
	Moves          []Move          `json:"moves"`
	Evolution      []EvolutionStep `json:"evolution"`
	Locations      []Location      `json:"locations"`
	LocationSource string          `json:"location_source,omitempty"`
}

// Ability is an ability with its short effect
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
	Effect string `json:"effect,omitempty"`
}

// Move is a move learnable in the generation
type Move struct {
	Name    string   `json:"name"`
	Methods []string `json:"methods"`
	Level   int      `json:"level,omitempty"`
}

// EvolutionStep is one edge of the evolution chain
type EvolutionStep struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	ToSpeciesID  int      `json:"to_species_id"`
	Requirements []string `json:"requirements"`
}

// Location is where the pokemon is found in one version
type Location struct {
	Location  string `json:"location"`
	Version   string `json:"version"`
	MaxChance int    `json:"max_chance,omitempty"`
}

// LookupMoveRequest looks a move up by name
type LookupMoveRequest struct {
	Name string `json:"name"`
}

// LookupMoveResponse holds the move's battle data
type LookupMoveResponse struct {
	Move *MoveDetail `json:"move"`
}

// MoveDetail is a move's battle data. Power, accuracy and PP are null for
// moves that have none.
type MoveDetail struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DamageClass string `json:"damage_class"`
	Power       *int   `json:"power"`
	Accuracy    *int   `json:"accuracy"`
	PP          *int   `json:"pp"`
	Effect      string `json:"effect,omitempty"`
}

// ListSpeciesRequest searches species names
type ListSpeciesRequest struct {
	Prefix string `json:"prefix,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// ListSpeciesResponse holds matching names
type ListSpeciesResponse struct {
	Names []string `json:"names"`
}

// User is a signed-in user
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// SignInRequest exchanges an identity provider's ID token for a session
type SignInRequest struct {
	IDToken string `json:"id_token"`
}

// SignInResponse carries the bearer token for later calls
type SignInResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignOutRequest ends the caller's session
type SignOutRequest struct{}

// SignOutResponse is empty
type SignOutResponse struct{}

// GetCurrentUserRequest asks who the caller is
type GetCurrentUserRequest struct{}

// GetCurrentUserResponse has a null user when the caller is anonymous
type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// DeleteAccountRequest deletes the caller's account and saved teams
type DeleteAccountRequest struct{}

// DeleteAccountResponse reports how many teams were removed
type DeleteAccountResponse struct {
	DeletedTeams int `json:"deleted_teams"`
}

// SavedTeam is a team stored for a user
type SavedTeam struct {
	ID         string       `json:"id"`
	Name       string       `json:"name,omitempty"`
	Team       pokemon.Team `json:"team"`
	Generation int          `json:"generation"`
	CreatedAt  time.Time    `json:"created_at"`
}

// SaveTeamRequest stores a team for the caller
type SaveTeamRequest struct {
	Name       string       `json:"name,omitempty"`
	Team       pokemon.Team `json:"team"`
	Generation int          `json:"generation,omitempty"`
}

// SaveTeamResponse holds the stored team with its id
type SaveTeamResponse struct {
	Team *SavedTeam `json:"team"`
}

// ListTeamsRequest lists the caller's teams
type ListTeamsRequest struct{}

// ListTeamsResponse holds the caller's teams, newest first
type ListTeamsResponse struct {
	Teams []*SavedTeam `json:"teams"`
}

// DeleteTeamRequest removes one of the caller's teams
type DeleteTeamRequest struct {
	TeamID string `json:"team_id"`
}

// DeleteTeamResponse is empty
type DeleteTeamResponse struct{}

// Snapshot is saved builder state
type Snapshot struct {
	Key        string       `json:"key"`
	Team       pokemon.Team `json:"team"`
	Generation int          `json:"generation"`
	Revision   int64        `json:"revision"`
	UpdatedAt  *time.Time   `json:"updated_at,omitempty"`
}

// SaveSnapshotRequest stores builder state. Revision must grow with every save.
type SaveSnapshotRequest struct {
	Key        string       `json:"key"`
	Team       pokemon.Team `json:"team"`
	Generation int          `json:"generation,omitempty"`
	Revision   int64        `json:"revision"`
}

// SaveSnapshotResponse holds the stored snapshot
type SaveSnapshotResponse struct {
	Snapshot *Snapshot `json:"snapshot"`
}

// LoadSnapshotRequest restores builder state
type LoadSnapshotRequest struct {
	Key string `json:"key"`
}

// LoadSnapshotResponse holds an empty team with found=false when nothing was restored
type LoadSnapshotResponse struct {
	Snapshot *Snapshot `json:"snapshot"`
	Found    bool      `json:"found"`
}

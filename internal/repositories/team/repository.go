// Package team provides persistence for the teams users save
package team

//go:generate mockgen -destination=mock/mock_repository.go -package=teammock github.com/KirkDiggler/poketeam-api/internal/repositories/team Repository

import (
	"context"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Repository defines the interface for saved team persistence
type Repository interface {
	// Save stores a team for a user. A blank record ID is generated and a zero
	// CreatedAt is stamped with the current time.
	// Returns errors.InvalidArgument for missing user or record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// LoadTeams lists a user's teams, newest first
	// Returns errors.InvalidArgument for an empty user ID
	// Returns errors.Internal for storage failures
	LoadTeams(ctx context.Context, input LoadTeamsInput) (*LoadTeamsOutput, error)

	// DeleteTeam removes one team owned by the user
	// Returns errors.NotFound if the user has no team with that ID
	// Returns errors.Internal for storage failures
	DeleteTeam(ctx context.Context, input DeleteTeamInput) (*DeleteTeamOutput, error)

	// DeleteAllUserData removes every team owned by the user
	// Returns errors.InvalidArgument for an empty user ID
	// Returns errors.Internal for storage failures
	DeleteAllUserData(ctx context.Context, input DeleteAllUserDataInput) (*DeleteAllUserDataOutput, error)
}

// SaveInput defines the input for saving a team
type SaveInput struct {
	UserID string
	Team   *pokemon.TeamRecord
}

// SaveOutput defines the output for saving a team
type SaveOutput struct {
	Team *pokemon.TeamRecord
}

// LoadTeamsInput defines the input for listing a user's teams
type LoadTeamsInput struct {
	UserID string
}

// LoadTeamsOutput defines the output for listing a user's teams
type LoadTeamsOutput struct {
	Teams []*pokemon.TeamRecord
}

// DeleteTeamInput defines the input for deleting a team
type DeleteTeamInput struct {
	UserID string
	TeamID string
}

// DeleteTeamOutput defines the output for deleting a team
type DeleteTeamOutput struct{}

// DeleteAllUserDataInput defines the input for deleting a user's data
type DeleteAllUserDataInput struct {
	UserID string
}

// DeleteAllUserDataOutput defines the output for deleting a user's data
type DeleteAllUserDataOutput struct {
	DeletedTeams int
}

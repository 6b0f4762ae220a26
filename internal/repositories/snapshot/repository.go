// Package snapshot persists the in-progress team and generation per session
// key so a client can pick up where it left off
package snapshot

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Snapshot is the saved builder state for one session key
type Snapshot struct {
	Key        string             `json:"key"`
	Team       pokemon.Team       `json:"team"`
	Generation pokemon.Generation `json:"generation"`
	// Revision is supplied by the client and must increase with every write
	Revision  int64     `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository defines the interface for snapshot persistence
type Repository interface {
	// Save upserts the snapshot for its key
	// Returns errors.InvalidArgument for a missing key or invalid generation
	// Returns errors.Aborted when the stored revision is not older than the input
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the snapshot for a key
	// Returns errors.NotFound if nothing was saved for the key
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Close releases the underlying database
	Close() error
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Snapshot *Snapshot
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	Key string
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Snapshot *Snapshot
}

package teambuilder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot"
)

const userSnapshotPrefix = "user:"

// storageKey namespaces a signed-in caller's key under their user ID. An
// anonymous key is a bearer capability: whoever holds it can read and
// overwrite the snapshot, so clients should generate it randomly per device.
// The user prefix is reserved so anonymous keys cannot reach account data.
func storageKey(userID, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument("snapshot key is required")
	}
	if strings.HasPrefix(key, userSnapshotPrefix) {
		return "", errors.InvalidArgumentf("snapshot key cannot start with %q", userSnapshotPrefix)
	}
	if userID == "" {
		return key, nil
	}
	return userSnapshotPrefix + userID + ":" + key, nil
}

// withCallerKey reports s under the key the caller used
func withCallerKey(s *snapshot.Snapshot, key string) *snapshot.Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Key = key
	return &out
}

func (o *orchestrator) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key, err := storageKey(input.UserID, input.Key)
	if err != nil {
		return nil, err
	}

	gen, err := o.resolveGeneration(input.Generation)
	if err != nil {
		return nil, err
	}

	out, err := o.snapshots.Save(ctx, snapshot.SaveInput{Snapshot: &snapshot.Snapshot{
		Key:        key,
		Team:       input.Team,
		Generation: gen,
		Revision:   input.Revision,
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}
	return &SaveSnapshotOutput{Snapshot: withCallerKey(out.Snapshot, input.Key)}, nil
}

// LoadSnapshot never fails on storage problems: a missing or unreadable
// snapshot restores an empty builder
func (o *orchestrator) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key, err := storageKey(input.UserID, input.Key)
	if err != nil {
		return nil, err
	}

	out, err := o.snapshots.Load(ctx, snapshot.LoadInput{Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			o.logger.Warn("failed to load snapshot, starting empty",
				zap.String("key", key),
				zap.Error(err))
		}
		return &LoadSnapshotOutput{
			Snapshot: &snapshot.Snapshot{Key: input.Key, Generation: o.defaultGen},
		}, nil
	}

	return &LoadSnapshotOutput{Snapshot: withCallerKey(out.Snapshot, input.Key), Found: true}, nil
}

package team

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/poketeam-api/internal/redis"
)

const (
	teamKeyPrefix   = "team:"
	userIndexPrefix = "team:user:"

	// Error messages
	errUserIDEmpty = "user ID cannot be empty"
	errTeamNil     = "team cannot be nil"
)

func teamKey(id string) string {
	return teamKeyPrefix + id
}

func userIndexKey(userID string) string {
	return userIndexPrefix + userID
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis team repository
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
	Logger      *zap.Logger
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed team repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("team")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  gen,
		logger: logger,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.Team == nil {
		return nil, errors.InvalidArgument(errTeamNil)
	}

	record := *input.Team
	if record.ID == "" {
		record.ID = r.idGen.Generate()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal team")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, teamKey(record.ID), data, 0)
	pipe.ZAdd(ctx, userIndexKey(input.UserID), redisclient.Z{
		Score:  float64(record.CreatedAt.UnixNano()),
		Member: record.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save team %s", record.ID)
	}

	r.logger.Debug("saved team",
		zap.String("user_id", input.UserID),
		zap.String("team_id", record.ID),
		zap.Int("members", record.Pokemon.Len()))

	return &SaveOutput{Team: &record}, nil
}

func (r *redisRepository) LoadTeams(ctx context.Context, input LoadTeamsInput) (*LoadTeamsOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := userIndexKey(input.UserID)
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list teams for user %s", input.UserID)
	}

	teams := make([]*pokemon.TeamRecord, 0, len(ids))
	if len(ids) == 0 {
		return &LoadTeamsOutput{Teams: teams}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = teamKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load teams for user %s", input.UserID)
	}

	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document
			stale = append(stale, ids[i])
			continue
		}

		var record pokemon.TeamRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal team %s", ids[i])
		}
		teams = append(teams, &record)
	}

	if len(stale) > 0 {
		r.logger.Warn("team index references missing teams, cleaning up",
			zap.String("index_key", indexKey),
			zap.Int("missing", len(stale)))
		if err := r.client.ZRem(ctx, indexKey, stale...).Err(); err != nil {
			r.logger.Warn("failed to clean up team index", zap.Error(err))
		}
	}

	return &LoadTeamsOutput{Teams: teams}, nil
}

func (r *redisRepository) DeleteTeam(ctx context.Context, input DeleteTeamInput) (*DeleteTeamOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("team_id", input.TeamID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	indexKey := userIndexKey(input.UserID)
	if err := r.client.ZScore(ctx, indexKey, input.TeamID).Err(); err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("team %s not found", input.TeamID).
				WithMeta("team_id", input.TeamID)
		}
		return nil, errors.Wrapf(err, "failed to check team %s", input.TeamID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, teamKey(input.TeamID))
	pipe.ZRem(ctx, indexKey, input.TeamID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete team %s", input.TeamID)
	}

	r.logger.Debug("deleted team",
		zap.String("user_id", input.UserID),
		zap.String("team_id", input.TeamID))

	return &DeleteTeamOutput{}, nil
}

func (r *redisRepository) DeleteAllUserData(ctx context.Context, input DeleteAllUserDataInput) (*DeleteAllUserDataOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := userIndexKey(input.UserID)
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list teams for user %s", input.UserID)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, teamKey(id))
	}
	keys = append(keys, indexKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete data for user %s", input.UserID)
	}

	r.logger.Info("deleted all user teams",
		zap.String("user_id", input.UserID),
		zap.Int("teams", len(ids)))

	return &DeleteAllUserDataOutput{DeletedTeams: len(ids)}, nil
}

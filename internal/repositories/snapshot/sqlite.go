package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
)

const schema = /* sql */ `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT    PRIMARY KEY,
	team       TEXT    NOT NULL,
	generation INTEGER NOT NULL,
	revision   INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

type snapshotRow struct {
	Key        string `db:"key"`
	Team       string `db:"team"`
	Generation int    `db:"generation"`
	Revision   int64  `db:"revision"`
	UpdatedAt  int64  `db:"updated_at"`
}

// SQLiteConfig contains configuration for the SQLite snapshot repository
type SQLiteConfig struct {
	// DSN is a go-sqlite3 data source, e.g. "file:poketeam.db" or ":memory:"
	DSN    string
	Clock  clock.Clock
	Logger *zap.Logger
}

// Validate validates the SQLiteConfig and sets defaults if not provided
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DSN == "" {
		return errors.InvalidArgument("dsn cannot be empty")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type sqliteRepository struct {
	db     *sqlx.DB
	clock  clock.Clock
	logger *zap.Logger
}

// NewSQLite opens the database and creates the schema
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open snapshot database")
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "unable to reach snapshot database")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create snapshot schema")
	}

	return &sqliteRepository{
		db:     db,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", input.Snapshot.Key, vb)
	if err := input.Snapshot.Generation.Validate(); err != nil {
		vb.InvalidField("generation", err.Error())
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	saved := *input.Snapshot
	saved.UpdatedAt = r.clock.Now()

	team, err := json.Marshal(saved.Team)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal team")
	}

	result, err := r.db.ExecContext(ctx,
		/* sql */ `
		INSERT INTO snapshots (key, team, generation, revision, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			team = excluded.team,
			generation = excluded.generation,
			revision = excluded.revision,
			updated_at = excluded.updated_at
		WHERE excluded.revision > snapshots.revision
	`, saved.Key, string(team), int(saved.Generation), saved.Revision, saved.UpdatedAt.UnixNano())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", saved.Key)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read save result")
	}
	if rows == 0 {
		r.logger.Info("rejected stale snapshot",
			zap.String("key", saved.Key),
			zap.Int64("revision", saved.Revision))
		return nil, errors.Abortedf("snapshot %s has a newer revision", saved.Key).
			WithMeta("revision", saved.Revision)
	}

	return &SaveOutput{Snapshot: &saved}, nil
}

func (r *sqliteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	var row snapshotRow
	err := r.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT key, team, generation, revision, updated_at
		FROM snapshots
		WHERE key = ?
	`, input.Key).StructScan(&row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("no snapshot for %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to load snapshot %s", input.Key)
	}

	snap := &Snapshot{
		Key:        row.Key,
		Generation: pokemon.Generation(row.Generation),
		Revision:   row.Revision,
		UpdatedAt:  time.Unix(0, row.UpdatedAt).UTC(),
	}
	if err := json.Unmarshal([]byte(row.Team), &snap.Team); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot %s", input.Key)
	}

	return &LoadOutput{Snapshot: snap}, nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

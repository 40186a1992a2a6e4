package replica

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

type localStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStore opens (creating if necessary) the SQLite replica database at
// cfg.SQLitePath and ensures the replica schema exists.
func NewLocalStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (LocalStore, error) {
	if cfg.SQLitePath != ":memory:" {
		if err := createLocalDBFileIfNotExists(cfg.SQLitePath); err != nil {
			log.Err(err).Str("func", "NewLocalStore").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createReplicaSchema); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error creating replica schema")
		return nil, fmt.Errorf("error creating replica schema: %w", err)
	}

	log.Debug().Str("func", "NewLocalStore").Msg("connected to replica database successfully")

	return &localStore{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// CollectionState implements [LocalStore].
func (s *localStore) CollectionState(ctx context.Context, entity string) ([]int64, *int64, error) {
	rows, err := s.db.QueryContext(ctx, selectCollectionIDs, entity)
	if err != nil {
		return nil, nil, fmt.Errorf("query collection ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 50)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, nil, fmt.Errorf("scan collection id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate collection ids: %w", err)
	}

	var ts int64
	err = s.db.QueryRowContext(ctx, selectCollectionWatermark, entity).Scan(&ts)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ids, nil, nil
	case err != nil:
		return nil, nil, fmt.Errorf("query collection watermark: %w", err)
	}

	return ids, &ts, nil
}

// ApplyDelta implements [LocalStore]. The whole response is applied in one
// transaction so a failed refresh never leaves a half-updated collection.
func (s *localStore) ApplyDelta(ctx context.Context, entity string, resp models.SyncResponse, syncedAtMs int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin apply delta: %w", err)
	}
	defer tx.Rollback()

	for _, item := range resp.Items {
		id, err := rowID(item)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode row %d: %w", id, err)
		}

		if _, err = tx.ExecContext(ctx, upsertReplicaRow, entity, id, string(payload)); err != nil {
			return fmt.Errorf("upsert row %d: %w", id, err)
		}
	}

	for _, id := range resp.IDsToDelete {
		if _, err = tx.ExecContext(ctx, deleteReplicaRow, entity, id); err != nil {
			return fmt.Errorf("delete row %d: %w", id, err)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertCollectionWatermark, entity, syncedAtMs); err != nil {
		return fmt.Errorf("advance watermark: %w", err)
	}

	return tx.Commit()
}

// Rows implements [LocalStore].
func (s *localStore) Rows(ctx context.Context, entity string) ([]models.CompressedRow, error) {
	rows, err := s.db.QueryContext(ctx, selectCollectionRows, entity)
	if err != nil {
		return nil, fmt.Errorf("query collection rows: %w", err)
	}
	defer rows.Close()

	out := make([]models.CompressedRow, 0, 50)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan collection row: %w", err)
		}

		var row models.CompressedRow
		if err = json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, fmt.Errorf("decode collection row: %w", err)
		}
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection rows: %w", err)
	}

	return out, nil
}

// Close implements [LocalStore].
func (s *localStore) Close() error {
	return s.db.Close()
}

// rowID reads column 0 of a compressed row. Rows decoded from JSON carry
// numbers as float64 or json.Number; rows built in-process carry int64.
func rowID(row models.CompressedRow) (int64, error) {
	if len(row) == 0 {
		return 0, ErrMalformedRow
	}

	switch v := row[0].(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%w: column 0 is %T", ErrMalformedRow, row[0])
	}
}

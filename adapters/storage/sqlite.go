package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pack-calc/core/kb"
	"pack-calc/core/types"
	"pack-calc/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	was_corrected INTEGER NOT NULL DEFAULT 0,
	approved_for_training INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rooms (
	id TEXT PRIMARY KEY,
	calculation_id TEXT NOT NULL REFERENCES calculations(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	data TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_rooms_calculation ON rooms(calculation_id, position);

CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	room_id TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	data TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_room ON items(room_id, position);

CREATE TABLE IF NOT EXISTS corrections (
	id TEXT PRIMARY KEY,
	calculation_id TEXT NOT NULL,
	data TEXT NOT NULL,
	approved_for_training INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_corrections_calculation ON corrections(calculation_id);

CREATE TABLE IF NOT EXISTS kb_overrides (
	key TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS training_snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL
);
`

// SQLiteStore persists everything in a single sqlite file. Aggregates
// are stored as JSON documents with the queryable fields promoted to
// columns; rooms and items keep their own rows so position survives.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed bootstraps) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Storage("creating database directory", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Storage("opening database", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Storage("initializing schema", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// CreateCalculation writes the aggregate and all children in one
// transaction
func (s *SQLiteStore) CreateCalculation(ctx context.Context, calc *types.Calculation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	data, err := marshalCalculation(calc)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO calculations (id, data, was_corrected, approved_for_training, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		calc.ID, data, calc.WasCorrected, calc.ApprovedForTraining,
		timestamp(calc.CreatedAt), timestamp(calc.UpdatedAt))
	if err != nil {
		return err
	}
	if err := insertChildren(ctx, tx, calc); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateCalculation replaces the aggregate: children are deleted and
// recreated inside the same transaction
func (s *SQLiteStore) UpdateCalculation(ctx context.Context, calc *types.Calculation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	data, err := marshalCalculation(calc)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE calculations
		SET data = ?, was_corrected = ?, approved_for_training = ?, updated_at = ?
		WHERE id = ?`,
		data, calc.WasCorrected, calc.ApprovedForTraining,
		timestamp(calc.UpdatedAt), calc.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("calculation", calc.ID)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rooms WHERE calculation_id = ?`, calc.ID); err != nil {
		return err
	}
	if err := insertChildren(ctx, tx, calc); err != nil {
		return err
	}
	return tx.Commit()
}

func insertChildren(ctx context.Context, tx *sql.Tx, calc *types.Calculation) error {
	for i := range calc.Rooms {
		room := &calc.Rooms[i]
		roomData, err := marshalRoom(room)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO rooms (id, calculation_id, position, data)
			VALUES (?, ?, ?, ?)`,
			room.ID, calc.ID, i, roomData); err != nil {
			return err
		}
		for j := range room.Items {
			item := &room.Items[j]
			itemData, err := json.Marshal(item)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO items (id, room_id, position, data)
				VALUES (?, ?, ?, ?)`,
				item.ID, room.ID, j, string(itemData)); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetCalculation loads the aggregate with rooms and items in stored order
func (s *SQLiteStore) GetCalculation(ctx context.Context, id string) (*types.Calculation, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM calculations WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("calculation", id)
	}
	if err != nil {
		return nil, errors.Storage("loading calculation", err)
	}

	var calc types.Calculation
	if err := json.Unmarshal([]byte(data), &calc); err != nil {
		return nil, errors.Storage("decoding calculation", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, data FROM rooms WHERE calculation_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, errors.Storage("loading rooms", err)
	}
	defer rows.Close()

	for rows.Next() {
		var roomID, roomData string
		if err := rows.Scan(&roomID, &roomData); err != nil {
			return nil, errors.Storage("scanning room", err)
		}
		var room types.Room
		if err := json.Unmarshal([]byte(roomData), &room); err != nil {
			return nil, errors.Storage("decoding room", err)
		}
		calc.Rooms = append(calc.Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("loading rooms", err)
	}

	for i := range calc.Rooms {
		items, err := s.loadItems(ctx, calc.Rooms[i].ID)
		if err != nil {
			return nil, err
		}
		calc.Rooms[i].Items = items
	}
	return &calc, nil
}

func (s *SQLiteStore) loadItems(ctx context.Context, roomID string) ([]types.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data FROM items WHERE room_id = ? ORDER BY position`, roomID)
	if err != nil {
		return nil, errors.Storage("loading items", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Storage("scanning item", err)
		}
		var item types.Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, errors.Storage("decoding item", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteCalculation removes the aggregate; children cascade
func (s *SQLiteStore) DeleteCalculation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("deleting calculation", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("calculation", id)
	}
	return nil
}

// ListCalculations returns stored aggregates without rooms, newest first
func (s *SQLiteStore) ListCalculations(ctx context.Context) ([]*types.Calculation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data FROM calculations ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, errors.Storage("listing calculations", err)
	}
	defer rows.Close()

	var out []*types.Calculation
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Storage("scanning calculation", err)
		}
		var calc types.Calculation
		if err := json.Unmarshal([]byte(data), &calc); err != nil {
			return nil, errors.Storage("decoding calculation", err)
		}
		out = append(out, &calc)
	}
	return out, rows.Err()
}

// SaveCorrection appends a correction record
func (s *SQLiteStore) SaveCorrection(ctx context.Context, rec *types.CorrectionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO corrections (id, calculation_id, data, approved_for_training, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.CalculationID, string(data), rec.ApprovedForTraining, timestamp(rec.CreatedAt))
	return err
}

// CountApprovedCorrections counts approved corrections newer than the
// latest training snapshot
func (s *SQLiteStore) CountApprovedCorrections(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM corrections
		WHERE approved_for_training = 1
		  AND created_at > COALESCE((SELECT MAX(created_at) FROM training_snapshots), '')`).
		Scan(&count)
	if err != nil {
		return 0, errors.Storage("counting corrections", err)
	}
	return count, nil
}

// MarkTrainingSnapshot resets the approved-correction count
func (s *SQLiteStore) MarkTrainingSnapshot(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training_snapshots (created_at) VALUES (?)`,
		timestamp(time.Now()))
	if err != nil {
		return errors.Storage("marking training snapshot", err)
	}
	return nil
}

// Snapshot returns the operator override table
func (s *SQLiteStore) Snapshot(ctx context.Context) (kb.Overrides, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, data FROM kb_overrides`)
	if err != nil {
		return nil, errors.Storage("loading overrides", err)
	}
	defer rows.Close()

	overrides := make(kb.Overrides)
	for rows.Next() {
		var key, data string
		if err := rows.Scan(&key, &data); err != nil {
			return nil, errors.Storage("scanning override", err)
		}
		var mapping kb.Mapping
		if err := json.Unmarshal([]byte(data), &mapping); err != nil {
			return nil, errors.Storage("decoding override", err)
		}
		overrides[key] = mapping
	}
	return overrides, rows.Err()
}

// SetOverride inserts or replaces one override entry
func (s *SQLiteStore) SetOverride(ctx context.Context, key string, mapping kb.Mapping) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kb_overrides (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), timestamp(time.Now()))
	if err != nil {
		return errors.Storage("saving override", err)
	}
	return nil
}

// DeleteOverride removes one override entry
func (s *SQLiteStore) DeleteOverride(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM kb_overrides WHERE key = ?`, key)
	if err != nil {
		return errors.Storage("deleting override", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("override", key)
	}
	return nil
}

// marshalCalculation encodes the aggregate without its rooms, which get
// their own rows
func marshalCalculation(calc *types.Calculation) (string, error) {
	flat := *calc
	flat.Rooms = nil
	data, err := json.Marshal(&flat)
	return string(data), err
}

// marshalRoom encodes a room without its items
func marshalRoom(room *types.Room) (string, error) {
	flat := *room
	flat.Items = nil
	data, err := json.Marshal(&flat)
	return string(data), err
}

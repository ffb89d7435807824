// Package store keeps maps, players and rounds as JSON documents in
// per-collection libSQL tables. Each table has an id primary key, the
// columns used for lookups, and a JSONB data column holding the whole
// document. Natural order is insertion order (rowid).
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/geoguess/tracker/internal/geoguess"
)

var ErrNotFound = errors.New("not found")

// Collection names, which are also the table names.
const (
	Maps    = "maps"
	Players = "players"
	Rounds  = "rounds"
)

// DocStore is the record store. The schema is created by the
// migrations package.
type DocStore struct {
	db *sql.DB
}

func New(db *sql.DB) *DocStore {
	return &DocStore{db: db}
}

// Ping checks the underlying connection.
func (s *DocStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Generic helpers shared by all collections.

func getOne[T any](ctx context.Context, q querier, query string, args ...any) (T, error) {
	var doc T
	var data string
	err := q.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return doc, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

func getMany[T any](ctx context.Context, q querier, query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []T{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var doc T
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func byIDQuery(table string) string {
	return fmt.Sprintf(`SELECT json(data) FROM %s WHERE id = ?`, table)
}

func allQuery(table string) string {
	return fmt.Sprintf(`SELECT json(data) FROM %s ORDER BY rowid`, table)
}

func (s *DocStore) del(ctx context.Context, table, id string) error {
	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Per-collection writers. Updates go through ON CONFLICT so the row
// keeps its rowid and with it its place in natural order.

func putMap(ctx context.Context, q querier, m geoguess.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO maps (id, name, data) VALUES (?, ?, jsonb(?))
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, data = excluded.data`,
		m.ID, m.Name, string(data),
	)
	return err
}

func putPlayer(ctx context.Context, q querier, p geoguess.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO players (id, name, data) VALUES (?, ?, jsonb(?))
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, data = excluded.data`,
		p.ID, p.Name, string(data),
	)
	return err
}

// updatePlayer rewrites an existing player and never inserts one.
func updatePlayer(ctx context.Context, q querier, p geoguess.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	result, err := q.ExecContext(ctx,
		`UPDATE players SET name = ?, data = jsonb(?) WHERE id = ?`,
		p.Name, string(data), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating player: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func putRound(ctx context.Context, q querier, r geoguess.Round) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO rounds (id, map_id, data) VALUES (?, ?, jsonb(?))`,
		r.ID, r.MapID, string(data),
	)
	return err
}

// stamp fills in id and timestamps the way every insert does.
func stamp(id *string, createdAt, updatedAt *time.Time, ts time.Time) {
	if *id == "" {
		*id = geoguess.NewID()
	}
	if createdAt.IsZero() {
		*createdAt = ts
	}
	if updatedAt.IsZero() {
		*updatedAt = ts
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

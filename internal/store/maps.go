package store

import (
	"context"
	"fmt"

	"github.com/geoguess/tracker/internal/geoguess"
)

func (s *DocStore) ListMaps(ctx context.Context) ([]geoguess.Map, error) {
	maps, err := getMany[geoguess.Map](ctx, s.db, allQuery(Maps))
	if err != nil {
		return nil, fmt.Errorf("listing maps: %w", err)
	}
	return maps, nil
}

func (s *DocStore) GetMap(ctx context.Context, id string) (geoguess.Map, error) {
	return getOne[geoguess.Map](ctx, s.db, byIDQuery(Maps), id)
}

// FindMapByName returns the first map, in insertion order, whose name
// matches exactly.
func (s *DocStore) FindMapByName(ctx context.Context, name string) (geoguess.Map, error) {
	return getOne[geoguess.Map](ctx, s.db,
		`SELECT json(data) FROM maps WHERE name = ? ORDER BY rowid LIMIT 1`, name,
	)
}

// InsertMap stores m, assigning an id and timestamps where unset, and
// returns the stored document.
func (s *DocStore) InsertMap(ctx context.Context, m geoguess.Map) (geoguess.Map, error) {
	stamp(&m.ID, &m.CreatedAt, &m.UpdatedAt, now())
	if err := putMap(ctx, s.db, m); err != nil {
		return geoguess.Map{}, fmt.Errorf("inserting map: %w", err)
	}
	return m, nil
}

// InsertMaps stores all maps in one transaction. Names are not checked
// for uniqueness.
func (s *DocStore) InsertMaps(ctx context.Context, maps []geoguess.Map) ([]geoguess.Map, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	out := make([]geoguess.Map, 0, len(maps))
	for _, m := range maps {
		stamp(&m.ID, &m.CreatedAt, &m.UpdatedAt, ts)
		if err := putMap(ctx, tx, m); err != nil {
			return nil, fmt.Errorf("inserting map %q: %w", m.Name, err)
		}
		out = append(out, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing maps: %w", err)
	}
	return out, nil
}

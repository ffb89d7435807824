package store

import (
	"context"
	"fmt"

	"github.com/geoguess/tracker/internal/geoguess"
)

func (s *DocStore) ListRounds(ctx context.Context) ([]geoguess.Round, error) {
	rounds, err := getMany[geoguess.Round](ctx, s.db, allQuery(Rounds))
	if err != nil {
		return nil, fmt.Errorf("listing rounds: %w", err)
	}
	return rounds, nil
}

func (s *DocStore) GetRound(ctx context.Context, id string) (geoguess.Round, error) {
	return getOne[geoguess.Round](ctx, s.db, byIDQuery(Rounds), id)
}

// InsertRound stores r. Referenced map and players are not checked here.
func (s *DocStore) InsertRound(ctx context.Context, r geoguess.Round) (geoguess.Round, error) {
	stamp(&r.ID, &r.CreatedAt, &r.UpdatedAt, now())
	if err := putRound(ctx, s.db, r); err != nil {
		return geoguess.Round{}, fmt.Errorf("inserting round: %w", err)
	}
	return r, nil
}

// RoundsByPlayer returns every round whose players list contains
// playerID, in insertion order.
func (s *DocStore) RoundsByPlayer(ctx context.Context, playerID string) ([]geoguess.Round, error) {
	rounds, err := getMany[geoguess.Round](ctx, s.db, `
		SELECT json(r.data) FROM rounds r
		WHERE EXISTS (
			SELECT 1 FROM json_each(json(r.data), '$.players') p WHERE p.value = ?
		)
		ORDER BY r.rowid
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("finding rounds for player: %w", err)
	}
	return rounds, nil
}

// PlayedMapIDs returns the distinct map ids referenced by any round.
func (s *DocStore) PlayedMapIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT map_id FROM rounds`)
	if err != nil {
		return nil, fmt.Errorf("listing played maps: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

package store

import (
	"context"
	"fmt"

	"github.com/geoguess/tracker/internal/geoguess"
)

func (s *DocStore) ListPlayers(ctx context.Context) ([]geoguess.Player, error) {
	players, err := getMany[geoguess.Player](ctx, s.db, allQuery(Players))
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	return players, nil
}

func (s *DocStore) GetPlayer(ctx context.Context, id string) (geoguess.Player, error) {
	return getOne[geoguess.Player](ctx, s.db, byIDQuery(Players), id)
}

func (s *DocStore) FindPlayerByName(ctx context.Context, name string) (geoguess.Player, error) {
	return getOne[geoguess.Player](ctx, s.db,
		`SELECT json(data) FROM players WHERE name = ? ORDER BY rowid LIMIT 1`, name,
	)
}

func (s *DocStore) InsertPlayer(ctx context.Context, p geoguess.Player) (geoguess.Player, error) {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt, now())
	if err := putPlayer(ctx, s.db, p); err != nil {
		return geoguess.Player{}, fmt.Errorf("inserting player: %w", err)
	}
	return p, nil
}

// RenamePlayer sets a new name and returns the player as it was before
// the update. A player deleted concurrently is not recreated.
func (s *DocStore) RenamePlayer(ctx context.Context, id, name string) (geoguess.Player, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return geoguess.Player{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	old, err := getOne[geoguess.Player](ctx, tx, byIDQuery(Players), id)
	if err != nil {
		return geoguess.Player{}, err
	}

	p := old
	p.Name = name
	p.UpdatedAt = now()
	if err := updatePlayer(ctx, tx, p); err != nil {
		return geoguess.Player{}, err
	}

	if err := tx.Commit(); err != nil {
		return geoguess.Player{}, fmt.Errorf("committing player: %w", err)
	}
	return old, nil
}

// DeletePlayer removes the player. Rounds that reference it are left
// untouched.
func (s *DocStore) DeletePlayer(ctx context.Context, id string) error {
	return s.del(ctx, Players, id)
}

package server

import (
	"context"

	"github.com/geoguess/tracker/internal/geoguess"
	"github.com/geoguess/tracker/internal/store"
)

// Store is the record store the handlers depend on. Lookups by id or
// name return store.ErrNotFound when nothing matches.
type Store interface {
	ListMaps(ctx context.Context) ([]geoguess.Map, error)
	GetMap(ctx context.Context, id string) (geoguess.Map, error)
	FindMapByName(ctx context.Context, name string) (geoguess.Map, error)
	InsertMap(ctx context.Context, m geoguess.Map) (geoguess.Map, error)
	InsertMaps(ctx context.Context, maps []geoguess.Map) ([]geoguess.Map, error)

	ListPlayers(ctx context.Context) ([]geoguess.Player, error)
	GetPlayer(ctx context.Context, id string) (geoguess.Player, error)
	FindPlayerByName(ctx context.Context, name string) (geoguess.Player, error)
	InsertPlayer(ctx context.Context, p geoguess.Player) (geoguess.Player, error)
	RenamePlayer(ctx context.Context, id, name string) (geoguess.Player, error)
	DeletePlayer(ctx context.Context, id string) error

	ListRounds(ctx context.Context) ([]geoguess.Round, error)
	GetRound(ctx context.Context, id string) (geoguess.Round, error)
	InsertRound(ctx context.Context, r geoguess.Round) (geoguess.Round, error)
	RoundsByPlayer(ctx context.Context, playerID string) ([]geoguess.Round, error)
	PlayedMapIDs(ctx context.Context) ([]string, error)
}

var _ Store = (*store.DocStore)(nil)

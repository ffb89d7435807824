package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/geoguess/tracker/internal/database"
	"github.com/geoguess/tracker/internal/geoguess"
	"github.com/geoguess/tracker/internal/migrations"
	"github.com/geoguess/tracker/internal/store"
)

func setupStore(t *testing.T) *store.DocStore {
	t.Helper()
	db, err := database.Open(context.Background(), database.Memory)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return store.New(db)
}

func TestMapLifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	created, err := s.InsertMap(ctx, geoguess.Map{Name: "World", Category: "country"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !geoguess.ValidID(created.ID) {
		t.Errorf("id %q is not an object id", created.ID)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("timestamps not set: %+v", created)
	}

	got, err := s.GetMap(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "World" || got.Category != "country" {
		t.Errorf("got %+v", got)
	}

	byName, err := s.FindMapByName(ctx, "World")
	if err != nil || byName.ID != created.ID {
		t.Errorf("find by name = %+v, %v", byName, err)
	}
	if _, err := s.FindMapByName(ctx, "world"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("name lookup must be case sensitive, got %v", err)
	}
	if _, err := s.GetMap(ctx, geoguess.NewID()); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertMapsKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	inserted, err := s.InsertMaps(ctx, []geoguess.Map{
		{Name: "Zeta", Category: "c"},
		{Name: "Alpha", Category: "c"},
		{Name: "Zeta", Category: "dup"},
	})
	if err != nil {
		t.Fatalf("insert many: %v", err)
	}
	if len(inserted) != 3 {
		t.Fatalf("inserted %d, want 3", len(inserted))
	}

	maps, err := s.ListMaps(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Zeta", "Alpha", "Zeta"}
	for i, m := range maps {
		if m.Name != want[i] {
			t.Errorf("maps[%d] = %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestPlayerLifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	p, err := s.InsertPlayer(ctx, geoguess.Player{Name: "ana"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	q, err := s.InsertPlayer(ctx, geoguess.Player{Name: "bo"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	old, err := s.RenamePlayer(ctx, p.ID, "anna")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if old.Name != "ana" {
		t.Errorf("old name = %q, want ana", old.Name)
	}

	players, err := s.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 2 || players[0].Name != "anna" || players[1].ID != q.ID {
		t.Errorf("rename must keep order, got %+v", players)
	}

	if _, err := s.FindPlayerByName(ctx, "anna"); err != nil {
		t.Errorf("find renamed: %v", err)
	}
	if _, err := s.RenamePlayer(ctx, geoguess.NewID(), "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("rename missing: %v", err)
	}

	if err := s.DeletePlayer(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeletePlayer(ctx, p.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	if _, err := s.GetPlayer(ctx, p.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("get deleted = %v, want ErrNotFound", err)
	}
}

func TestRoundQueries(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	a, _ := s.InsertMap(ctx, geoguess.Map{Name: "A", Category: "c"})
	b, _ := s.InsertMap(ctx, geoguess.Map{Name: "B", Category: "c"})
	p1, _ := s.InsertPlayer(ctx, geoguess.Player{Name: "p1"})
	p2, _ := s.InsertPlayer(ctx, geoguess.Player{Name: "p2"})

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mk := func(mapID string, players ...string) geoguess.Round {
		r, err := s.InsertRound(ctx, geoguess.Round{
			MapID:      mapID,
			Answer:     "Lisbon",
			Latitude:   38.72,
			Longitude:  -9.14,
			StreetView: "https://example.com/sv",
			Players:    players,
			StartTime:  start,
			EndTime:    start.Add(time.Minute),
			Score:      100,
		})
		if err != nil {
			t.Fatalf("insert round: %v", err)
		}
		return r
	}
	r1 := mk(a.ID, p1.ID)
	mk(a.ID, p2.ID)
	r3 := mk(b.ID, p1.ID, p2.ID)

	got, err := s.RoundsByPlayer(ctx, p1.ID)
	if err != nil {
		t.Fatalf("rounds by player: %v", err)
	}
	if len(got) != 2 || got[0].ID != r1.ID || got[1].ID != r3.ID {
		t.Errorf("rounds for p1 = %+v", got)
	}
	if !got[0].StartTime.Equal(start) {
		t.Errorf("start time round trip = %v", got[0].StartTime)
	}

	none, err := s.RoundsByPlayer(ctx, geoguess.NewID())
	if err != nil || len(none) != 0 {
		t.Errorf("unknown player = %+v, %v", none, err)
	}

	played, err := s.PlayedMapIDs(ctx)
	if err != nil {
		t.Fatalf("played: %v", err)
	}
	if len(played) != 2 {
		t.Errorf("played = %v, want 2 distinct ids", played)
	}

	all, err := s.ListRounds(ctx)
	if err != nil || len(all) != 3 {
		t.Errorf("list rounds = %d, %v", len(all), err)
	}
	if _, err := s.GetRound(ctx, r1.ID); err != nil {
		t.Errorf("get round: %v", err)
	}
}

func TestListEmpty(t *testing.T) {
	s := setupStore(t)
	maps, err := s.ListMaps(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if maps == nil {
		t.Error("empty list should be non-nil")
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/geoguess/tracker/internal/geoguess"
)

func testGlobal(t *testing.T) (*globalCmd, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &globalCmd{
		DBPath: filepath.Join(t.TempDir(), "geoguessr.db"),
		out:    &buf,
	}, &buf
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndListMaps(t *testing.T) {
	g, out := testGlobal(t)
	file := writeFile(t, "maps.json", `[
		{"id": "ignored", "name": "Japan", "category": "country"},
		{"name": "Famous Places", "category": "landmarks"}
	]`)

	if err := (&loadMapsCmd{File: file}).Run(g); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(out.String(), "loaded 2 maps") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&lsMapsCmd{}).Run(g); err != nil {
		t.Fatalf("ls: %v", err)
	}
	for _, want := range []string{"Japan", "Famous Places", "landmarks"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("listing missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "ignored") {
		t.Error("ids from the file should not be kept")
	}
}

func TestLoadMapsDryRun(t *testing.T) {
	g, out := testGlobal(t)
	file := writeFile(t, "maps.json", `[{"name": "Brazil", "category": "country"}]`)

	if err := (&loadMapsCmd{File: file, DryRun: true}).Run(g); err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if !strings.Contains(out.String(), `would insert "Brazil"`) {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(g.DBPath); !os.IsNotExist(err) {
		t.Error("dry run should not create the database")
	}
}

func TestLoadMapsBadFile(t *testing.T) {
	g, _ := testGlobal(t)
	file := writeFile(t, "maps.json", `{"name": "not an array"}`)

	if err := (&loadMapsCmd{File: file}).Run(g); err == nil {
		t.Error("expected error for non-array file")
	}
}

func TestPlayerStats(t *testing.T) {
	g, out := testGlobal(t)
	ctx := context.Background()

	st, closeDB, err := g.open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	m, _ := st.InsertMap(ctx, geoguess.Map{Name: "M", Category: "c"})
	p, _ := st.InsertPlayer(ctx, geoguess.Player{Name: "kim"})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, secs := range []int{30, 45} {
		_, err := st.InsertRound(ctx, geoguess.Round{
			MapID:     m.ID,
			Players:   []string{p.ID},
			StartTime: start,
			EndTime:   start.Add(time.Duration(secs) * time.Second),
			Score:     10,
		})
		if err != nil {
			t.Fatalf("insert round: %v", err)
		}
	}
	closeDB()

	if err := (&playerStatsCmd{ID: p.ID}).Run(g); err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"kim", "1m15s", "20"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stats missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := (&lsPlayersCmd{}).Run(g); err != nil {
		t.Fatalf("ls players: %v", err)
	}
	if !strings.Contains(out.String(), p.ID) {
		t.Errorf("players listing missing id:\n%s", out.String())
	}
}

func TestPlayerStatsErrors(t *testing.T) {
	g, _ := testGlobal(t)

	if err := (&playerStatsCmd{ID: "bad"}).Run(g); err == nil {
		t.Error("expected error for malformed id")
	}
	if err := (&playerStatsCmd{ID: geoguess.NewID()}).Run(g); err == nil {
		t.Error("expected error for unknown player")
	}
}

func TestMigrate(t *testing.T) {
	g, out := testGlobal(t)
	if err := (&migrateCmd{}).Run(g); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out.String(), "migrations applied") {
		t.Errorf("output = %q", out.String())
	}
}

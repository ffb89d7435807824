// Command geoctl is an operator tool for the geotracker database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/geoguess/tracker/internal/config"
	"github.com/geoguess/tracker/internal/database"
	"github.com/geoguess/tracker/internal/migrations"
	"github.com/geoguess/tracker/internal/store"
)

type globalCmd struct {
	DBPath string `help:"Path of the libSQL database file." env:"DB_PATH" default:"data/geoguessr.db"`

	out io.Writer
}

// open connects to the database and brings the schema up to date.
func (g *globalCmd) open(ctx context.Context) (*store.DocStore, func(), error) {
	db, err := database.Open(ctx, g.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.New(db), func() { db.Close() }, nil
}

type migrateCmd struct{}

func (m *migrateCmd) Run(g *globalCmd) error {
	_, closeDB, err := g.open(context.Background())
	if err != nil {
		return err
	}
	defer closeDB()
	fmt.Fprintf(g.out, "migrations applied to %s\n", g.DBPath)
	return nil
}

var CLI struct {
	globalCmd

	Migrate migrateCmd `cmd:"" help:"Apply database migrations."`

	Maps struct {
		Ls   lsMapsCmd   `cmd:"" help:"List all maps with their round counts."`
		Load loadMapsCmd `cmd:"" help:"Bulk insert maps from a JSON file."`
	} `cmd:""`

	Players struct {
		Ls    lsPlayersCmd   `cmd:"" help:"List all players."`
		Stats playerStatsCmd `cmd:"" help:"Show time played and score for a player."`
	} `cmd:""`
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name("geoctl"),
		kong.Description("Manage geotracker maps and players."),
	)
	CLI.out = os.Stdout
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}

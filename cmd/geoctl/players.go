package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/geoguess/tracker/internal/geoguess"
	"github.com/geoguess/tracker/internal/store"
)

type lsPlayersCmd struct{}

func (c *lsPlayersCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	st, closeDB, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	players, err := st.ListPlayers(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(g.out)
	t.AppendHeader(table.Row{"ID", "Name", "Created"})
	for _, p := range players {
		t.AppendRow(table.Row{p.ID, p.Name, p.CreatedAt.Format(time.DateTime)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type playerStatsCmd struct {
	ID string `arg:"" help:"Object id of the player."`
}

func (c *playerStatsCmd) Run(g *globalCmd) error {
	id, err := geoguess.NormalizeID(c.ID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, closeDB, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	p, err := st.GetPlayer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("player %s not found", c.ID)
	}
	if err != nil {
		return err
	}

	rounds, err := st.RoundsByPlayer(ctx, id)
	if err != nil {
		return err
	}
	stats := geoguess.ComputeStats(rounds)

	t := table.NewWriter()
	t.SetOutputMirror(g.out)
	t.SetTitle(p.Name)
	t.AppendRow(table.Row{"Rounds played", stats.RoundsPlayed})
	t.AppendRow(table.Row{"Total score", stats.TotalScore})
	t.AppendRow(table.Row{"Time played", time.Duration(stats.TimeSpentPlayingSeconds * float64(time.Second)).String()})
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

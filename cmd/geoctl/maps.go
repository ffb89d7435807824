package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/geoguess/tracker/internal/geoguess"
)

type lsMapsCmd struct{}

func (c *lsMapsCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	st, closeDB, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	maps, err := st.ListMaps(ctx)
	if err != nil {
		return err
	}
	rounds, err := st.ListRounds(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(g.out)
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Rounds"})
	for _, m := range geoguess.JoinRounds(maps, rounds) {
		t.AppendRow(table.Row{m.ID, m.Name, m.Category, len(m.Rounds)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type loadMapsCmd struct {
	DryRun bool   `help:"Parse the file and report what would be inserted without writing."`
	File   string `arg:"" help:"JSON file holding an array of {name, category} objects." type:"existingfile"`
}

func (c *loadMapsCmd) Run(g *globalCmd) error {
	maps, err := readMaps(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	if c.DryRun {
		for _, m := range maps {
			fmt.Fprintf(g.out, "would insert %q (%s)\n", m.Name, m.Category)
		}
		return nil
	}

	ctx := context.Background()
	st, closeDB, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	inserted, err := st.InsertMaps(ctx, maps)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.out, "loaded %d maps\n", len(inserted))
	return nil
}

// readMaps decodes the file and drops any ids it carries; the store
// assigns new ones.
func readMaps(path string) ([]geoguess.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var maps []geoguess.Map
	if err := json.NewDecoder(f).Decode(&maps); err != nil {
		return nil, err
	}
	for i := range maps {
		maps[i].ID = ""
	}
	return maps, nil
}

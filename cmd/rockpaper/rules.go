package main

import (
	"fmt"
	"strings"

	"github.com/lox/rockpaper/internal/display"
	"github.com/lox/rockpaper/internal/moves"
)

type RulesCmd struct {
	Moves []string `arg:"" optional:"" help:"Move names in circle order (defaults to the configured moves)"`
}

func (c *RulesCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	names := cfg.Game.Moves
	if len(c.Moves) > 0 {
		names = c.Moves
	}

	set, err := moves.NewMoveSet(names)
	if err != nil {
		return err
	}
	table, err := moves.Build(set)
	if err != nil {
		return err
	}

	for _, name := range set.Names() {
		entry, err := table.Entry(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s beats %s\n", name, strings.Join(entry.Beats, ", "))
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, display.HelpTable(table))
	return nil
}

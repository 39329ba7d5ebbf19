package tgbot

import (
	"context"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type OverviewCommand struct {
	players Players
}

func (c *OverviewCommand) Run(ctx context.Context, _ string) (string, error) {
	o, err := c.players.Overview(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Players: %d\n", o.Players)
	fmt.Fprintf(&b, "Countries: %d\n", o.Countries)
	fmt.Fprintf(&b, "Continents: %d\n", o.Continents)
	if o.Ages.Known > 0 {
		fmt.Fprintf(&b, "Average age: %.1f\n", o.Ages.Mean)
	}
	for _, g := range o.Genders {
		fmt.Fprintf(&b, "%s: %d (%.1f%%)\n", g.Value, g.Count, g.Percent)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (c *OverviewCommand) Help() string {
	return "shows dataset totals"
}

func (c *OverviewCommand) Permission() mapset.Set[ChatKind] {
	return everywhere
}

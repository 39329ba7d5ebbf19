package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goserg/cricketboard/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type PlayerCommand struct {
	players Players
}

func (c *PlayerCommand) Run(ctx context.Context, args string) (string, error) {
	id, err := strconv.Atoi(args)
	if err != nil {
		return "", errors.New("usage: /player <id>")
	}
	card, err := c.players.Card(ctx, id)
	if errors.Is(err, service.ErrPlayerNotFound) {
		return "No player with id " + args + ".", nil
	}
	if err != nil {
		return "", err
	}
	p, s := card.Profile, card.Stats
	var b strings.Builder
	b.WriteString(profileLine(p))
	b.WriteString("\n")
	if p.HasAge() {
		fmt.Fprintf(&b, "Age: %.1f\n", p.Age)
	}
	fmt.Fprintf(&b, "Batting: %s, bowling: %s\n", p.BattingStyle, p.BowlingStyle)
	fmt.Fprintf(&b, "Matches %d, runs %d, avg %.2f, SR %.2f\n", s.Matches, s.Runs, s.BattingAverage, s.StrikeRate)
	fmt.Fprintf(&b, "100s %d, 50s %d\n", s.Centuries, s.Fifties)
	fmt.Fprintf(&b, "Wickets %d, avg %.2f, econ %.2f, 5w %d\n", s.Wickets, s.BowlingAverage, s.EconomyRate, s.FiveWicketHauls)
	fmt.Fprintf(&b, "Catches %d, stumpings %d\n", s.Catches, s.Stumpings)
	b.WriteString("Favourite strokes:")
	for _, st := range card.TopStrokes {
		fmt.Fprintf(&b, " %s (%d)", st.Stroke, st.Score)
	}
	b.WriteString("\nSynthetic demo statistics, not real data.")
	return b.String(), nil
}

func (c *PlayerCommand) Help() string {
	return "<id> shows a player card"
}

func (c *PlayerCommand) Permission() mapset.Set[ChatKind] {
	return everywhere
}

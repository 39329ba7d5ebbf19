package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const findLimit = 10

type FindCommand struct {
	players Players
}

func (c *FindCommand) Run(ctx context.Context, args string) (string, error) {
	if args == "" {
		return "", errors.New("usage: /find <name>")
	}
	res, err := c.players.FindByName(ctx, args)
	if err != nil {
		return "", err
	}
	if res.Total == 0 {
		return "No players found.", nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d player(s):\n", res.Total)
	for i, p := range res.Players {
		if i == findLimit {
			fmt.Fprintf(&b, "...and %d more, narrow the search.\n", res.Total-findLimit)
			break
		}
		if p.HasID {
			b.WriteString("/player ")
			b.WriteString(strconv.Itoa(p.ID))
			b.WriteString(" ")
		}
		b.WriteString(profileLine(p))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (c *FindCommand) Help() string {
	return "<name> searches players by name"
}

func (c *FindCommand) Permission() mapset.Set[ChatKind] {
	return privateOnly
}

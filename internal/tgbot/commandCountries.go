package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goserg/cricketboard/internal/analytics"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	defaultCountries = 10
	maxCountries     = 50
)

type CountriesCommand struct {
	players Players
}

func (c *CountriesCommand) Run(ctx context.Context, args string) (string, error) {
	n := defaultCountries
	if args != "" {
		v, err := strconv.Atoi(args)
		if err != nil || v <= 0 {
			return "", errors.New("usage: /countries [n]")
		}
		n = min(v, maxCountries)
	}
	counts, err := c.players.Distribution(ctx, analytics.FieldCountry, n)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "No players loaded.", nil
	}
	var b strings.Builder
	for i, cnt := range counts {
		fmt.Fprintf(&b, "%d. %s: %d\n", i+1, cnt.Value, cnt.Count)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (c *CountriesCommand) Help() string {
	return "[n] lists the n countries with most players"
}

func (c *CountriesCommand) Permission() mapset.Set[ChatKind] {
	return privateOnly
}

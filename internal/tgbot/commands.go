package tgbot

import (
	"context"

	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

// Players is the part of the player service the bot talks to.
type Players interface {
	Overview(ctx context.Context) (analytics.Overview, error)
	FindByName(ctx context.Context, name string) (analytics.FilterResult, error)
	Card(ctx context.Context, id int) (service.PlayerCard, error)
	Distribution(ctx context.Context, field analytics.Field, top int) ([]analytics.Count, error)
}

var _ Players = (*service.PlayerService)(nil)

type ChatKind string

const (
	ChatPrivate ChatKind = "private"
	ChatGroup   ChatKind = "group"
)

type Command interface {
	Run(ctx context.Context, args string) (string, error)
	Help() string
	Permission() mapset.Set[ChatKind]
}

var (
	everywhere  = mapset.NewSet(ChatPrivate, ChatGroup)
	privateOnly = mapset.NewSet(ChatPrivate)
)

type Commands struct {
	list map[string]Command
	// aliases run like their target but stay out of the help list
	aliases mapset.Set[string]
}

func NewCommands(ps Players) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":      hc,
			"start":     hc,
			"overview":  &OverviewCommand{players: ps},
			"find":      &FindCommand{players: ps},
			"player":    &PlayerCommand{players: ps},
			"countries": &CountriesCommand{players: ps},
		},
		aliases: mapset.NewSet("start"),
	}
	hc.commands = &uc
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, chat ChatKind, cmd string, args string) (string, error) {
	command, ok := uc.list[cmd]
	if !ok || !command.Permission().Contains(chat) {
		return "", ErrBadRequest
	}
	return command.Run(ctx, args)
}

// visible returns the listed command names for chat, sorted.
func (uc *Commands) visible(chat ChatKind) []string {
	names := mapset.NewThreadUnsafeSet[string]()
	for name, command := range uc.list {
		if !uc.aliases.Contains(name) && command.Permission().Contains(chat) {
			names.Add(name)
		}
	}
	return sorted(names)
}

func profileLine(p domain.Profile) string {
	line := p.FullName + " (" + p.CountryName
	if p.Position != "" {
		line += ", " + p.Position
	}
	return line + ")"
}

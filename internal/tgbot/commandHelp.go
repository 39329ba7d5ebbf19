package tgbot

import (
	"context"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type HelpCommand struct {
	commands *Commands
}

// Run lists the commands of a private chat, or explains the one named in args.
func (c *HelpCommand) Run(_ context.Context, args string) (string, error) {
	args = strings.TrimPrefix(args, "/")
	if command, ok := c.commands.list[args]; ok {
		return "/" + args + " " + command.Help(), nil
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range c.commands.visible(ChatPrivate) {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Send /help and a command name for details.\n")
	b.WriteString("All statistics are synthetic demo data.")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "lists the available commands"
}

func (c *HelpCommand) Permission() mapset.Set[ChatKind] {
	return everywhere
}

func sorted(set mapset.Set[string]) []string {
	out := set.ToSlice()
	sort.Strings(out)
	return out
}

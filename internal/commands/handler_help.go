package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/text-adventure/internal/display"
)

// HelpHandlerFactory creates handlers that display command help.
type HelpHandlerFactory struct {
	commands map[string]*Command
	pub      Publisher
}

// NewHelpHandlerFactory creates a new HelpHandlerFactory.
func NewHelpHandlerFactory(commands map[string]*Command, pub Publisher) *HelpHandlerFactory {
	return &HelpHandlerFactory{commands: commands, pub: pub}
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if cmdCtx.Arg != "" {
			return f.showCommand(cmdCtx.Arg)
		}
		return f.listCommands()
	}, nil
}

// listCommands displays all commands grouped by category.
func (f *HelpHandlerFactory) listCommands() error {
	// Group commands by category
	groups := make(map[string][]string)
	for name, cmd := range f.commands {
		category := cmd.Category
		if category == "" {
			category = "other"
		}
		groups[category] = append(groups[category], name)
	}

	// Sort categories and commands within each category
	categories := make([]string, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	lines := []string{"Available commands:"}
	for _, cat := range categories {
		names := groups[cat]
		sort.Strings(names)

		entries := make([]string, 0, len(names))
		for _, name := range names {
			entries = append(entries, f.label(name))
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", display.Capitalize(cat), strings.Join(entries, ", ")))
	}

	return send(f.pub, lines...)
}

// showCommand displays detailed help for a specific command. Aliases find
// the command they belong to.
func (f *HelpHandlerFactory) showCommand(query string) error {
	name, cmd := f.lookup(strings.ToLower(query))
	if cmd == nil {
		return NewUserError(fmt.Sprintf("Command %q is unknown.", query))
	}

	lines := []string{fmt.Sprintf("%s: %s", name, cmd.Description)}
	lines = append(lines, fmt.Sprintf("Usage: %s", cmd.Usage(name)))
	if len(cmd.Aliases) > 0 {
		lines = append(lines, fmt.Sprintf("Aliases: %s", strings.Join(cmd.Aliases, ", ")))
	}

	return send(f.pub, lines...)
}

func (f *HelpHandlerFactory) lookup(verb string) (string, *Command) {
	if cmd, ok := f.commands[verb]; ok {
		return verb, cmd
	}
	for name, cmd := range f.commands {
		for _, alias := range cmd.Aliases {
			if strings.ToLower(alias) == verb {
				return name, cmd
			}
		}
	}
	return "", nil
}

// label renders a command name with its aliases, e.g. "take (grab, get)".
func (f *HelpHandlerFactory) label(name string) string {
	cmd := f.commands[name]
	if len(cmd.Aliases) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(cmd.Aliases, ", "))
}

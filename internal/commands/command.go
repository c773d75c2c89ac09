package commands

import (
	"fmt"
	"strings"
)

// Command categories used to group the help listing.
const (
	CategoryMovement = "movement"
	CategoryItems    = "items"
	CategoryGeneral  = "general"
)

// InputSpec describes the free text a command takes after its verb. The
// whole rest of the line is the input.
type InputSpec struct {
	Name     string
	Required bool
	Missing  string // shown to the player when a required input is absent
}

// Command defines a verb the player can type.
type Command struct {
	Handler     string
	Aliases     []string
	Category    string
	Description string
	Input       *InputSpec
	Config      map[string]string // passed to the handler factory
}

func (c *Command) Validate() error {
	if c.Handler == "" {
		return fmt.Errorf("command handler not set")
	}

	for i, alias := range c.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("alias %d: must not be blank", i)
		}
		if strings.ContainsAny(alias, " \t") {
			return fmt.Errorf("alias %q: must be a single word", alias)
		}
	}

	if c.Input != nil {
		if c.Input.Name == "" {
			return fmt.Errorf("input name is required")
		}
		if c.Input.Required && c.Input.Missing == "" {
			return fmt.Errorf("input %q: missing message is required", c.Input.Name)
		}
	}

	return nil
}

// Usage returns a one line usage string, e.g. "take <item>".
func (c *Command) Usage(name string) string {
	parts := []string{name}
	if c.Input != nil {
		if c.Input.Required {
			parts = append(parts, fmt.Sprintf("<%s>", c.Input.Name))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]", c.Input.Name))
		}
	}
	return strings.Join(parts, " ")
}

func moveCommand(direction, alias string) *Command {
	return &Command{
		Handler:     "move",
		Aliases:     []string{alias},
		Category:    CategoryMovement,
		Description: fmt.Sprintf("Walk %s.", direction),
		Config:      map[string]string{"direction": direction},
	}
}

// DefaultCommands returns the built in verbs keyed by command name.
func DefaultCommands() map[string]*Command {
	return map[string]*Command{
		"north": moveCommand("north", "n"),
		"south": moveCommand("south", "s"),
		"east":  moveCommand("east", "e"),
		"west":  moveCommand("west", "w"),
		"go": {
			Handler:     "move",
			Category:    CategoryMovement,
			Description: "Walk through the exit in any direction.",
			Input:       &InputSpec{Name: "direction", Required: true, Missing: "Go where?"},
		},
		"inventory": {
			Handler:     "inventory",
			Aliases:     []string{"i"},
			Category:    CategoryItems,
			Description: "Show what you are carrying.",
		},
		"take": {
			Handler:     "take",
			Aliases:     []string{"grab", "get"},
			Category:    CategoryItems,
			Description: "Pick up an item in the room.",
			Input:       &InputSpec{Name: "item", Required: true, Missing: "Take what?"},
		},
		"use": {
			Handler:     "use",
			Category:    CategoryItems,
			Description: "Use an item you carry, e.g. to unlock a door.",
			Input:       &InputSpec{Name: "item", Required: true, Missing: "Use what?"},
		},
		"look": {
			Handler:     "look",
			Aliases:     []string{"l"},
			Category:    CategoryGeneral,
			Description: "Look around, or at an item here or in your inventory.",
			Input:       &InputSpec{Name: "item"},
		},
		"help": {
			Handler:     "help",
			Category:    CategoryGeneral,
			Description: "List commands, or explain one.",
			Input:       &InputSpec{Name: "command"},
		},
		"quit": {
			Handler:     "quit",
			Aliases:     []string{"q"},
			Category:    CategoryGeneral,
			Description: "Leave the game.",
		},
	}
}

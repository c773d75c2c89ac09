package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/text-adventure/internal/game"
)

// InventoryHandlerFactory creates handlers that list the player's inventory.
type InventoryHandlerFactory struct {
	pub Publisher
}

// NewInventoryHandlerFactory creates a new InventoryHandlerFactory.
func NewInventoryHandlerFactory(pub Publisher) *InventoryHandlerFactory {
	return &InventoryHandlerFactory{pub: pub}
}

func (f *InventoryHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *InventoryHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		inv := cmdCtx.Session.Inventory()
		if inv.Len() == 0 {
			return send(f.pub, "You are not carrying anything.")
		}

		lines := []string{"You are carrying:"}
		lines = append(lines, FormatInventoryItems(inv)...)
		return send(f.pub, lines...)
	}, nil
}

// FormatInventoryItems returns one bulleted line per carried item.
func FormatInventoryItems(inv *game.Inventory) []string {
	var lines []string
	for _, name := range inv.Names() {
		lines = append(lines, fmt.Sprintf(" - %s", name))
	}
	return lines
}

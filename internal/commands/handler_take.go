package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/text-adventure/internal/game"
)

// TakeHandlerFactory creates handlers for picking up items.
// Input:
//   - item (required): part of the item's name
type TakeHandlerFactory struct {
	pub Publisher
}

func NewTakeHandlerFactory(pub Publisher) *TakeHandlerFactory {
	return &TakeHandlerFactory{pub: pub}
}

func (f *TakeHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *TakeHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if cmdCtx.Arg == "" {
			return NewUserError("Take what?")
		}

		item, err := cmdCtx.Session.Take(cmdCtx.Arg)
		if errors.Is(err, game.ErrItemNotFound) {
			return NewUserError("I don't see that here.")
		}
		if err != nil {
			return err
		}

		return send(f.pub, fmt.Sprintf("You picked up the %s.", item.Name))
	}, nil
}

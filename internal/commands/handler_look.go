package commands

import (
	"context"
	"errors"

	"github.com/pixil98/text-adventure/internal/game"
)

// LookHandlerFactory creates handlers that redisplay the current room, or
// describe an item the player can see.
type LookHandlerFactory struct {
	pub Publisher
}

// NewLookHandlerFactory creates a new LookHandlerFactory.
func NewLookHandlerFactory(pub Publisher) *LookHandlerFactory {
	return &LookHandlerFactory{pub: pub}
}

func (f *LookHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if cmdCtx.Arg == "" {
			// The turn loop draws the room; all look has to do is ask for it.
			cmdCtx.Result.Refresh = true
			return nil
		}

		item, err := cmdCtx.Session.Examine(cmdCtx.Arg)
		if errors.Is(err, game.ErrItemNotFound) {
			return NewUserError("I don't see that here.")
		}
		if err != nil {
			return err
		}

		return send(f.pub, item.Description)
	}, nil
}

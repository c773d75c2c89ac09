package commands

import (
	"context"
	"fmt"
)

// UseHandlerFactory creates handlers for using carried items. The only use
// an item has is unlocking the rooms keyed to it.
// Input:
//   - item (required): part of the item's name
type UseHandlerFactory struct {
	pub Publisher
}

func NewUseHandlerFactory(pub Publisher) *UseHandlerFactory {
	return &UseHandlerFactory{pub: pub}
}

func (f *UseHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *UseHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if cmdCtx.Arg == "" {
			return NewUserError("Use what?")
		}

		item, ok := cmdCtx.Session.Held(cmdCtx.Arg)
		if !ok {
			return NewUserError("You don't have that.")
		}

		rooms, err := cmdCtx.Session.UnlockWith(item.ID)
		if err != nil {
			return err
		}
		if len(rooms) == 0 {
			return NewUserError("You can't use that here.")
		}

		lines := make([]string, 0, len(rooms))
		for _, r := range rooms {
			lines = append(lines, fmt.Sprintf("You unlocked the door to the %s!", r.Name))
		}
		return send(f.pub, lines...)
	}, nil
}

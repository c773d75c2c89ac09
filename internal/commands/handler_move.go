package commands

import (
	"context"
	"errors"

	"github.com/pixil98/text-adventure/internal/game"
)

// MoveHandlerFactory creates handlers that move the player between rooms.
// Config:
//   - direction (optional): the direction to move. If unset the command's
//     input is the direction.
type MoveHandlerFactory struct {
	pub Publisher
}

// NewMoveHandlerFactory creates a new MoveHandlerFactory.
func NewMoveHandlerFactory(pub Publisher) *MoveHandlerFactory {
	return &MoveHandlerFactory{pub: pub}
}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		direction := cmdCtx.Config["direction"]
		if direction == "" {
			direction = cmdCtx.Arg
		}
		if direction == "" {
			return NewUserError("Go where?")
		}

		_, err := cmdCtx.Session.Move(direction)
		switch {
		case errors.Is(err, game.ErrNoExit):
			return NewUserError("You can't go that way.")
		case errors.Is(err, game.ErrRoomLocked):
			return NewUserError("The door is locked.")
		case err != nil:
			return err
		}

		cmdCtx.Result.Refresh = true
		return nil
	}, nil
}

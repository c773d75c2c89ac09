package command

import (
	"fmt"
	"io"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/text-adventure/internal/display"
	"github.com/pixil98/text-adventure/internal/game"
	"github.com/pixil98/text-adventure/internal/player"
)

type DisplayConfig struct {
	Width        int    `json:"width"`
	ClearScreen  *bool  `json:"clear_screen"`
	RoomTemplate string `json:"room_template"`
}

func (c *DisplayConfig) validate() error {
	el := errors.NewErrorList()

	if c.Width < 0 {
		el.Add(fmt.Errorf("display: width must not be negative"))
	}
	if _, err := display.NewRenderer(display.WithTemplate(c.RoomTemplate)); err != nil {
		el.Add(fmt.Errorf("display: %w", err))
	}

	return el.Err()
}

func (c *DisplayConfig) width() int {
	if c.Width == 0 {
		return display.DefaultWidth
	}
	return c.Width
}

func (c *DisplayConfig) clearScreen() bool {
	return c.ClearScreen == nil || *c.ClearScreen
}

// BuildRenderer creates the room renderer for out. Headers are only styled
// when out is a terminal.
func (c *DisplayConfig) BuildRenderer(out io.Writer) (*display.Renderer, error) {
	return display.NewRenderer(
		display.WithWidth(c.width()),
		display.WithTemplate(c.RoomTemplate),
		display.WithStyle(display.IsTerminal(out)),
	)
}

func (c *DisplayConfig) BuildPlayerManager(world *game.World, out io.Writer) (*player.PlayerManager, error) {
	r, err := c.BuildRenderer(out)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return player.NewPlayerManager(world, r,
		player.WithWidth(c.width()),
		player.WithClearScreen(c.clearScreen()),
	), nil
}

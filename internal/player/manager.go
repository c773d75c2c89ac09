package player

import (
	"fmt"
	"io"

	"github.com/pixil98/text-adventure/internal/commands"
	"github.com/pixil98/text-adventure/internal/display"
	"github.com/pixil98/text-adventure/internal/game"
)

// PlayerManager creates players for a loaded world.
type PlayerManager struct {
	world    *game.World
	cmds     map[string]*commands.Command
	renderer *display.Renderer

	width       int
	clearScreen bool
}

type ManagerOpt func(*PlayerManager)

// WithWidth sets the column player messages wrap at.
func WithWidth(width int) ManagerOpt {
	return func(m *PlayerManager) {
		m.width = width
	}
}

// WithClearScreen clears the terminal whenever the room changes.
func WithClearScreen(clear bool) ManagerOpt {
	return func(m *PlayerManager) {
		m.clearScreen = clear
	}
}

// WithCommands replaces the default command set.
func WithCommands(cmds map[string]*commands.Command) ManagerOpt {
	return func(m *PlayerManager) {
		m.cmds = cmds
	}
}

func NewPlayerManager(world *game.World, renderer *display.Renderer, opts ...ManagerOpt) *PlayerManager {
	pm := &PlayerManager{
		world:    world,
		cmds:     commands.DefaultCommands(),
		renderer: renderer,
		width:    display.DefaultWidth,
	}
	for _, opt := range opts {
		opt(pm)
	}

	return pm
}

// NewPlayer starts a new session in the world, reading commands from in and
// writing to out. Play changes the world, so each world backs one player.
func (m *PlayerManager) NewPlayer(in io.Reader, out io.Writer) (*Player, error) {
	p := &Player{
		in:       in,
		out:      out,
		session:  game.NewSession(m.world),
		renderer: m.renderer,
		screen:   display.NewScreen(out, m.clearScreen),
		width:    m.width,
	}

	h := commands.NewHandler(m.cmds, p)
	if err := h.CompileAll(); err != nil {
		return nil, fmt.Errorf("compiling commands: %w", err)
	}
	p.cmdHandler = h

	return p, nil
}

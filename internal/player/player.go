package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pixil98/text-adventure/internal/commands"
	"github.com/pixil98/text-adventure/internal/display"
	"github.com/pixil98/text-adventure/internal/game"
)

const (
	msgWelcome = "Welcome to Text Adventure!"
	msgLoaded  = "World loaded. Type 'help' for commands."
	msgGoodbye = "Goodbye!"
)

// Player runs the turn loop for one session: show the room, read a line,
// execute it.
type Player struct {
	in  io.Reader
	out io.Writer

	session    *game.Session
	cmdHandler *commands.Handler
	renderer   *display.Renderer
	screen     *display.Screen
	width      int
}

// Publish writes a message to the player, wrapped to the display width.
func (p *Player) Publish(data []byte) error {
	return p.writeLine(display.Wrap(string(data), p.width))
}

// Play runs turns until the player quits, input ends or ctx is cancelled.
// Quitting and end of input both return nil.
func (p *Player) Play(ctx context.Context) error {
	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-stop:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	if err := p.screen.Clear(); err != nil {
		return err
	}
	if err := p.writeLine(msgWelcome); err != nil {
		return err
	}
	if err := p.writeLine(msgLoaded); err != nil {
		return err
	}

	slog.Info("session started", "session", p.session.ID)

	refresh := false
	for {
		if refresh {
			if err := p.screen.Clear(); err != nil {
				return err
			}
		}
		if err := p.status(); err != nil {
			return err
		}
		if err := p.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				// End of input is the same as quitting.
				if err := <-inputErrChan; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				slog.Info("input closed", "session", p.session.ID)
				return p.writeLine("\n" + msgGoodbye)
			}

			res, err := p.cmdHandler.Exec(ctx, p.session, line)
			if err != nil {
				// System error - end the session
				return fmt.Errorf("command execution failed: %w", err)
			}

			if res.Quit {
				slog.Info("session ended", "session", p.session.ID)
				return p.writeLine(msgGoodbye)
			}
			refresh = res.Refresh
		}
	}
}

// status draws the current room.
func (p *Player) status() error {
	room, err := p.session.CurrentRoom()
	if err != nil {
		return err
	}
	return p.renderer.Render(p.out, room)
}

func (p *Player) prompt() error {
	_, err := io.WriteString(p.out, "\n> ")
	return err
}

func (p *Player) writeLine(msg string) error {
	_, err := io.WriteString(p.out, msg+"\n")
	return err
}

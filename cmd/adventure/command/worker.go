package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixil98/go-service"
	"github.com/pixil98/text-adventure/internal/player"
)

// WorkerBuilder returns the service's worker builder. stop is called when
// the game ends so the rest of the service shuts down with it.
func WorkerBuilder(stop context.CancelFunc) func(config interface{}) (service.WorkerList, error) {
	return func(config interface{}) (service.WorkerList, error) {
		cfg, ok := config.(*Config)
		if !ok {
			return nil, fmt.Errorf("unable to cast config")
		}

		logger, err := cfg.Log.BuildLogger(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
		slog.SetDefault(logger)

		world, err := cfg.World.BuildWorld()
		if err != nil {
			return nil, fmt.Errorf("loading world: %w", err)
		}

		players, err := cfg.Display.BuildPlayerManager(world, os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("creating player manager: %w", err)
		}

		return service.WorkerList{
			"game": &gameWorker{
				players: players,
				in:      os.Stdin,
				out:     os.Stdout,
				stop:    stop,
			},
		}, nil
	}
}

// gameWorker plays one session on the process's terminal.
type gameWorker struct {
	players *player.PlayerManager
	in      io.Reader
	out     io.Writer
	stop    context.CancelFunc
}

func (w *gameWorker) Start(ctx context.Context) error {
	defer w.stop()

	p, err := w.players.NewPlayer(w.in, w.out)
	if err != nil {
		return fmt.Errorf("creating player: %w", err)
	}

	return p.Play(ctx)
}

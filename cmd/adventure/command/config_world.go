package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/text-adventure/internal/game"
	"github.com/pixil98/text-adventure/internal/storage"
)

const defaultWorldPath = "data/world.json"

type WorldConfig struct {
	Path   string `json:"path"`
	Strict bool   `json:"strict"` // reject unknown fields in the world file
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		c.Path = defaultWorldPath
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		el.Add(fmt.Errorf("world: invalid path %q: %w", c.Path, err))
	}

	return el.Err()
}

// BuildWorld loads the world. Rooms the player can never reach and items
// placed nowhere are logged but do not stop the game.
func (c *WorldConfig) BuildWorld() (*game.World, error) {
	var opts []storage.LoadOpt
	if c.Strict {
		opts = append(opts, storage.WithStrict())
	}

	w, err := game.LoadWorld(c.Path, opts...)
	if err != nil {
		return nil, err
	}

	unreachable, err := w.Unreachable()
	if err != nil {
		return nil, fmt.Errorf("checking reachability: %w", err)
	}
	for _, id := range unreachable {
		slog.Warn("room is unreachable from the starting room", "path", c.Path, "room", id)
	}
	for _, id := range w.Unplaced() {
		slog.Warn("item is not placed in any room", "path", c.Path, "item", id)
	}

	slog.Debug("world loaded", "path", c.Path, "rooms", len(w.Rooms), "items", len(w.Items))
	return w, nil
}

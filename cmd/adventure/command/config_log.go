package command

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pixil98/go-errors"
)

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

func (c *LogConfig) validate() error {
	el := errors.NewErrorList()

	if _, err := c.level(); err != nil {
		el.Add(fmt.Errorf("log: %w", err))
	}
	switch c.Format {
	case "", "text", "json":
	default:
		el.Add(fmt.Errorf("log: unknown format %q", c.Format))
	}

	return el.Err()
}

func (c *LogConfig) level() (slog.Level, error) {
	if c.Level == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("parsing level: %w", err)
	}
	return lvl, nil
}

// BuildLogger creates a logger writing to w. Logs must not share a stream
// with the game.
func (c *LogConfig) BuildLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch c.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
}

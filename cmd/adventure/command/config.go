package command

import (
	"github.com/pixil98/go-errors"
)

type Config struct {
	World   WorldConfig   `json:"world"`
	Display DisplayConfig `json:"display"`
	Log     LogConfig     `json:"log"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.World.validate())
	el.Add(c.Display.validate())
	el.Add(c.Log.validate())

	return el.Err()
}

package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item is a portable object defined in the world document. Items never
// change after load; where an item is lives in the rooms and the inventory.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.ID == "" {
		el.Add(fmt.Errorf("item id is required"))
	}
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Description == "" {
		el.Add(fmt.Errorf("item description is required"))
	}
	return el.Err()
}

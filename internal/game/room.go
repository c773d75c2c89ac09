package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/text-adventure/internal/storage"
)

// Room represents a location in the world.
type Room struct {
	ID          string                                    `json:"id" yaml:"id"`
	Name        string                                    `json:"name" yaml:"name"`
	Description string                                    `json:"description" yaml:"description"`
	Items       []storage.SmartIdentifier[*Item]          `json:"items,omitempty" yaml:"items,omitempty"`
	Exits       map[string]storage.SmartIdentifier[*Room] `json:"exits,omitempty" yaml:"exits,omitempty"` // direction -> destination
	Locked      bool                                      `json:"locked,omitempty" yaml:"locked,omitempty"`

	// KeyId is the item that unlocks this room. A locked room without one
	// stays locked.
	KeyId *storage.SmartIdentifier[*Item] `json:"key_id,omitempty" yaml:"key_id,omitempty"`
}

// Validate satisfies storage.ValidatingSpec. References are checked later
// by World.Resolve.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.ID == "" {
		el.Add(fmt.Errorf("room id is required"))
	}
	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for dir, exit := range r.Exits {
		if NormalizeDirection(dir) == "" {
			el.Add(fmt.Errorf("exit direction must not be blank"))
		}
		if err := exit.Validate(); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", dir, err))
		}
	}

	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}

	if r.KeyId != nil {
		if err := r.KeyId.Validate(); err != nil {
			el.Add(fmt.Errorf("key_id: %w", err))
		}
	}

	return el.Err()
}

// Exit returns the room reached by going dir from r.
func (r *Room) Exit(dir string) (*Room, bool) {
	exit, ok := r.Exits[NormalizeDirection(dir)]
	if !ok {
		return nil, false
	}
	return exit.Id(), true
}

// Directions returns the room's exit directions in display order.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.Exits))
	for dir := range r.Exits {
		dirs = append(dirs, dir)
	}
	SortDirections(dirs)
	return dirs
}

// UnlocksWith reports whether using itemId would unlock r right now.
func (r *Room) UnlocksWith(itemId string) bool {
	return r.Locked && r.KeyId != nil && r.KeyId.Get() == itemId
}

// ItemNames returns the names of the items in the room, in room order.
func (r *Room) ItemNames() []string {
	return itemNames(r.Items)
}

// removeItem takes the item at index i out of the room, keeping the order of
// the rest.
func (r *Room) removeItem(i int) storage.SmartIdentifier[*Item] {
	item := r.Items[i]
	r.Items = append(r.Items[:i:i], r.Items[i+1:]...)
	return item
}

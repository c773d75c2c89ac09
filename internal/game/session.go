package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is one playthrough: where the player is and what they carry. It
// owns the world and is the only thing that mutates it. A session is driven
// by one turn at a time and is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	world         *World
	currentRoomId string
	inventory     *Inventory
}

// NewSession starts a playthrough in the world's starting room with nothing
// carried. The world must already be resolved.
func NewSession(w *World) *Session {
	return &Session{
		ID:            uuid.New(),
		world:         w,
		currentRoomId: w.StartingRoom.Get(),
		inventory:     NewInventory(),
	}
}

// World returns the world the session is playing.
func (s *Session) World() *World {
	return s.world
}

// CurrentRoom returns the room the player is in. An error means the session
// no longer points at a real room and cannot continue.
func (s *Session) CurrentRoom() (*Room, error) {
	r, ok := s.world.Room(s.currentRoomId)
	if !ok {
		return nil, fmt.Errorf("current room %q: %w", s.currentRoomId, ErrRoomNotFound)
	}
	return r, nil
}

// Inventory returns the items the player carries.
func (s *Session) Inventory() *Inventory {
	return s.inventory
}

// Move walks through the exit in direction dir. The player stays put if
// there is no such exit (ErrNoExit) or the room beyond is locked
// (ErrRoomLocked).
func (s *Session) Move(dir string) (*Room, error) {
	from, err := s.CurrentRoom()
	if err != nil {
		return nil, err
	}

	to, ok := from.Exit(dir)
	if !ok {
		return nil, ErrNoExit
	}
	if to == nil {
		return nil, fmt.Errorf("exit %s from %q is unresolved: %w", NormalizeDirection(dir), from.ID, ErrRoomNotFound)
	}

	if to.Locked {
		return nil, ErrRoomLocked
	}

	s.currentRoomId = to.ID
	return to, nil
}

// Take moves the first item in the current room whose name contains query
// into the inventory. Returns ErrItemNotFound if nothing matches.
func (s *Session) Take(query string) (*Item, error) {
	room, err := s.CurrentRoom()
	if err != nil {
		return nil, err
	}

	i := matchName(room.Items, query)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	item := room.removeItem(i)
	s.inventory.Add(item)
	return item.Id(), nil
}

// Held returns the first carried item whose name contains query.
func (s *Session) Held(query string) (*Item, bool) {
	return s.inventory.Find(query)
}

// Examine finds an item by name in the current room, then in the inventory.
func (s *Session) Examine(query string) (*Item, error) {
	room, err := s.CurrentRoom()
	if err != nil {
		return nil, err
	}

	if i := matchName(room.Items, query); i >= 0 {
		return room.Items[i].Id(), nil
	}
	if item, ok := s.inventory.Find(query); ok {
		return item, nil
	}
	return nil, ErrItemNotFound
}

// UnlockWith unlocks every locked room next to the current room that is
// keyed to itemId and returns them in exit order. The item is not used up.
func (s *Session) UnlockWith(itemId string) ([]*Room, error) {
	room, err := s.CurrentRoom()
	if err != nil {
		return nil, err
	}

	var unlocked []*Room
	for _, dir := range room.Directions() {
		target, _ := room.Exit(dir)
		if target == nil {
			return nil, fmt.Errorf("exit %s from %q is unresolved: %w", dir, room.ID, ErrRoomNotFound)
		}

		if target.UnlocksWith(itemId) {
			target.Locked = false
			unlocked = append(unlocked, target)
		}
	}

	return unlocked, nil
}

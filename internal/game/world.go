package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/text-adventure/internal/storage"
)

// World is the room graph and item catalogue loaded from the world
// document. After load the only thing that changes is Room.Locked.
type World struct {
	StartingRoom storage.SmartIdentifier[*Room] `json:"starting_room" yaml:"starting_room"`
	Rooms        []*Room                        `json:"rooms" yaml:"rooms"`
	Items        []*Item                        `json:"items" yaml:"items"`

	rooms *storage.Index[*Room]
	items *storage.Index[*Item]
}

// LoadWorld reads a world document and resolves every reference in it.
func LoadWorld(path string, opts ...storage.LoadOpt) (*World, error) {
	w, err := storage.LoadFile[*World](path, opts...)
	if err != nil {
		return nil, err
	}

	if err := w.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references in %s: %w", path, err)
	}

	return w, nil
}

// Validate satisfies storage.ValidatingSpec. It checks the records and the
// rules between them that need no lookups: unique ids, items placed at most
// once and exit keys that name distinct directions. Resolve checks the
// references.
func (w *World) Validate() error {
	el := errors.NewErrorList()

	if err := w.StartingRoom.Validate(); err != nil {
		el.Add(fmt.Errorf("starting_room: %w", err))
	}

	if len(w.Rooms) == 0 {
		el.Add(fmt.Errorf("at least one room is required"))
	}

	roomIds := map[string]bool{}
	owners := map[string]string{}
	for i, r := range w.Rooms {
		if r == nil {
			el.Add(fmt.Errorf("room %d: must not be null", i))
			continue
		}
		if err := r.Validate(); err != nil {
			el.Add(fmt.Errorf("room %d (%s): %w", i, r.ID, err))
		}

		if r.ID != "" && roomIds[r.ID] {
			el.Add(fmt.Errorf("duplicate room id: %s", r.ID))
		}
		roomIds[r.ID] = true

		dirs := map[string]bool{}
		for dir := range r.Exits {
			norm := NormalizeDirection(dir)
			if dirs[norm] {
				el.Add(fmt.Errorf("room %q: more than one exit leads %s", r.ID, norm))
			}
			dirs[norm] = true
		}

		// An item may be placed in at most one room, once.
		for _, item := range r.Items {
			id := item.Get()
			if owner, ok := owners[id]; ok {
				el.Add(fmt.Errorf("item %q is placed in room %q and room %q", id, owner, r.ID))
			}
			owners[id] = r.ID
		}
	}

	itemIds := map[string]bool{}
	for i, item := range w.Items {
		if item == nil {
			el.Add(fmt.Errorf("item %d: must not be null", i))
			continue
		}
		if err := item.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d (%s): %w", i, item.ID, err))
		}

		if item.ID != "" && itemIds[item.ID] {
			el.Add(fmt.Errorf("duplicate item id: %s", item.ID))
		}
		itemIds[item.ID] = true
	}

	return el.Err()
}

// Resolve indexes rooms and items by id, normalizes exit directions and
// resolves every reference. The world must have passed Validate. Every
// unresolved reference is reported together as ReferenceErrors.
func (w *World) Resolve() error {
	w.rooms = storage.NewIndex[*Room]()
	for _, r := range w.Rooms {
		if err := w.rooms.Add(r.ID, r); err != nil {
			return err
		}
	}

	w.items = storage.NewIndex[*Item]()
	for _, item := range w.Items {
		if err := w.items.Add(item.ID, item); err != nil {
			return err
		}
	}

	var refErrs ReferenceErrors
	ref := func(field string, err error) {
		if refErr := reference(field, err); refErr != nil {
			refErrs = append(refErrs, refErr)
		}
	}

	ref("starting_room", w.StartingRoom.Resolve(w.rooms))

	for _, r := range w.Rooms {
		exits := make(map[string]storage.SmartIdentifier[*Room], len(r.Exits))
		for _, dir := range sortedKeys(r.Exits) {
			exit := r.Exits[dir]
			norm := NormalizeDirection(dir)
			ref(fmt.Sprintf("room %q exit %s", r.ID, norm), exit.Resolve(w.rooms))
			exits[norm] = exit
		}
		r.Exits = exits

		for i := range r.Items {
			ref(fmt.Sprintf("room %q item", r.ID), r.Items[i].Resolve(w.items))
		}

		if r.KeyId != nil {
			ref(fmt.Sprintf("room %q key_id", r.ID), r.KeyId.Resolve(w.items))
		}
	}

	if len(refErrs) > 0 {
		return refErrs
	}
	return nil
}

// sortedKeys returns the exit keys in display order so errors come out in a
// stable order.
func sortedKeys(exits map[string]storage.SmartIdentifier[*Room]) []string {
	keys := make([]string, 0, len(exits))
	for k := range exits {
		keys = append(keys, k)
	}
	SortDirections(keys)
	return keys
}

func reference(field string, err error) *ReferenceError {
	if err == nil {
		return nil
	}
	return &ReferenceError{Field: field, Err: err}
}

// Room returns the room with the given id.
func (w *World) Room(id string) (*Room, bool) {
	if w.rooms == nil {
		return nil, false
	}
	return w.rooms.Get(id)
}

// Item returns the item with the given id.
func (w *World) Item(id string) (*Item, bool) {
	if w.items == nil {
		return nil, false
	}
	return w.items.Get(id)
}

// Unplaced returns the ids of items that are defined but not in any room.
// They can never be picked up.
func (w *World) Unplaced() []string {
	placed := map[string]bool{}
	for _, r := range w.Rooms {
		for _, item := range r.Items {
			placed[item.Get()] = true
		}
	}

	var ids []string
	for _, item := range w.Items {
		if !placed[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

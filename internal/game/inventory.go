package game

import "github.com/pixil98/text-adventure/internal/storage"

// Inventory holds the items the player carries, in the order they were
// picked up.
type Inventory struct {
	Items []storage.SmartIdentifier[*Item]
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends an item to the inventory.
func (inv *Inventory) Add(item storage.SmartIdentifier[*Item]) {
	inv.Items = append(inv.Items, item)
}

// Contains checks if an item is in the inventory.
func (inv *Inventory) Contains(itemId string) bool {
	for _, item := range inv.Items {
		if item.Get() == itemId {
			return true
		}
	}
	return false
}

// Find returns the first carried item whose name contains query.
func (inv *Inventory) Find(query string) (*Item, bool) {
	i := matchName(inv.Items, query)
	if i < 0 {
		return nil, false
	}
	return inv.Items[i].Id(), true
}

// Names returns the names of the carried items.
func (inv *Inventory) Names() []string {
	return itemNames(inv.Items)
}

func (inv *Inventory) Len() int {
	return len(inv.Items)
}

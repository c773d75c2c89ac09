package storage

import "fmt"

// Index maps ids to records. It is not safe for concurrent use.
type Index[T ValidatingSpec] struct {
	records map[string]T
}

func NewIndex[T ValidatingSpec]() *Index[T] {
	return &Index[T]{
		records: map[string]T{},
	}
}

// Add stores v under id. Ids must be unique.
func (ix *Index[T]) Add(id string, v T) error {
	if id == "" {
		return fmt.Errorf("%s id must be set", kindName[T]())
	}

	// Error if the key is already in use
	if _, ok := ix.records[id]; ok {
		return fmt.Errorf("duplicate %s id: %s", kindName[T](), id)
	}

	ix.records[id] = v
	return nil
}

func (ix *Index[T]) Get(id string) (T, bool) {
	val, ok := ix.records[id]
	return val, ok
}

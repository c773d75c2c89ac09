package storage

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

type ValidatingSpec interface {
	Validate() error
}

// Getter looks up a record by id.
type Getter[T any] interface {
	Get(string) (T, bool)
}

// SmartIdentifier is an id in a document that is resolved to the record it
// names once all records are loaded.
type SmartIdentifier[T ValidatingSpec] struct {
	key string
	val T
}

func NewSmartIdentifier[T ValidatingSpec](key string) SmartIdentifier[T] {
	return SmartIdentifier[T]{key: key}
}

func NewResolvedSmartIdentifier[T ValidatingSpec](key string, val T) SmartIdentifier[T] {
	return SmartIdentifier[T]{key: key, val: val}
}

func (id *SmartIdentifier[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &id.key)
}

func (id *SmartIdentifier[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&id.key)
}

func (id SmartIdentifier[T]) Validate() error {
	if id.key == "" {
		return fmt.Errorf("%s identifier is required", kindName[T]())
	}
	return nil
}

// Resolve looks the key up in g. On failure the identifier is left unresolved.
func (id *SmartIdentifier[T]) Resolve(g Getter[T]) error {
	val, ok := g.Get(id.key)
	if !ok {
		return fmt.Errorf("%s %q not found", kindName[T](), id.key)
	}
	id.val = val
	return nil
}

// Resolved reports whether Resolve has succeeded.
func (id SmartIdentifier[T]) Resolved() bool {
	return !isNil(id.val)
}

func (id SmartIdentifier[T]) Get() string {
	return id.key
}

func (id SmartIdentifier[T]) Id() T {
	return id.val
}

func kindName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}

package display

import (
	"bytes"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/text-adventure/internal/game"
	"github.com/pixil98/text-adventure/internal/storage"
)

func newTestRoom() *game.Room {
	hall := &game.Room{ID: "hall", Name: "Hall", Description: "A long hall."}
	key := &game.Item{ID: "brass_key", Name: "Brass Key", Description: "A small brass key."}
	lamp := &game.Item{ID: "old_lamp", Name: "Old Lamp", Description: "A dented oil lamp."}

	return &game.Room{
		ID:          "cell",
		Name:        "Cell",
		Description: "A damp cell with moss on the walls.",
		Items: []storage.SmartIdentifier[*game.Item]{
			storage.NewResolvedSmartIdentifier("brass_key", key),
			storage.NewResolvedSmartIdentifier("old_lamp", lamp),
		},
		Exits: map[string]storage.SmartIdentifier[*game.Room]{
			"up":    storage.NewResolvedSmartIdentifier("hall", hall),
			"north": storage.NewResolvedSmartIdentifier("hall", hall),
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	tests := map[string]struct {
		room   func() *game.Room
		opts   []RendererOpt
		exp    string
		expErr string
	}{
		"default": {
			room: newTestRoom,
			exp: "\n=== Cell ===\nA damp cell with moss on the walls.\n\n" +
				"You see:\n - Brass Key\n - Old Lamp\n\nExits: north, up\n",
		},
		"no items or exits": {
			room: func() *game.Room {
				return &game.Room{ID: "void", Name: "Void", Description: "Nothing."}
			},
			exp: "\n=== Void ===\nNothing.\n\nExits: none\n",
		},
		"narrow": {
			room: newTestRoom,
			opts: []RendererOpt{WithWidth(12)},
			exp: "\n=== Cell ===\nA damp cell\nwith moss on\nthe walls.\n\n" +
				"You see:\n - Brass Key\n - Old Lamp\n\nExits: north, up\n",
		},
		"custom template with sprig": {
			room: newTestRoom,
			opts: []RendererOpt{WithTemplate(`{{ .Name | upper }} [{{ .Exits | join "/" }}]`)},
			exp:  "CELL [north/up]",
		},
		"empty template keeps default": {
			room: func() *game.Room {
				return &game.Room{ID: "void", Name: "Void", Description: "Nothing."}
			},
			opts: []RendererOpt{WithTemplate("")},
			exp:  "\n=== Void ===\nNothing.\n\nExits: none\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := NewRenderer(tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var buf bytes.Buffer
			if err := r.Render(&buf, tt.room()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", buf.String(), tt.exp)
		})
	}
}

func TestNewRenderer_BadTemplate(t *testing.T) {
	_, err := NewRenderer(WithTemplate("{{ .Name "))
	testutil.AssertErrorContains(t, err, "parsing room template")
}

func TestRenderer_RenderError(t *testing.T) {
	r, err := NewRenderer(WithTemplate("{{ .Missing }}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	err = r.Render(&buf, newTestRoom())
	testutil.AssertErrorContains(t, err, "executing room template")
}

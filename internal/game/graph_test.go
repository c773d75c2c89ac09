package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWorld_Unreachable(t *testing.T) {
	tests := map[string]struct {
		doc string
		exp []string
	}{
		"locked rooms still count as reachable": {
			doc: cellWorld,
			exp: nil,
		},
		"one way exits": {
			doc: `{
				"starting_room": "top",
				"rooms": [
					{"id": "top", "name": "Top", "description": "Top.", "exits": {"d": "middle"}},
					{"id": "middle", "name": "Middle", "description": "Middle.", "exits": {"d": "bottom"}},
					{"id": "bottom", "name": "Bottom", "description": "Bottom."},
					{"id": "island", "name": "Island", "description": "Island.", "exits": {"u": "top"}}
				]
			}`,
			exp: []string{"island"},
		},
		"start in the middle": {
			doc: `{
				"starting_room": "middle",
				"rooms": [
					{"id": "top", "name": "Top", "description": "Top.", "exits": {"d": "middle"}},
					{"id": "middle", "name": "Middle", "description": "Middle.", "exits": {"d": "bottom", "s": "bottom"}},
					{"id": "bottom", "name": "Bottom", "description": "Bottom."}
				]
			}`,
			exp: []string{"top"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t, tt.doc)

			got, err := w.Unreachable()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "unreachable count", len(got), len(tt.exp))
			for i := range tt.exp {
				testutil.AssertEqual(t, "unreachable", got[i], tt.exp[i])
			}
		})
	}
}

package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"fits": {
			text:  "A damp cell.",
			width: 20,
			exp:   "A damp cell.",
		},
		"wraps at word boundary": {
			text:  "A damp cell with moss on the walls.",
			width: 12,
			exp:   "A damp cell\nwith moss on\nthe walls.",
		},
		"zero width leaves text": {
			text:  "A damp cell with moss on the walls.",
			width: 0,
			exp:   "A damp cell with moss on the walls.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", Wrap(tt.text, tt.width), tt.exp)
		})
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
	testutil.AssertEqual(t, "word", Capitalize("movement"), "Movement")
}

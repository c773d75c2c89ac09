package commands

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestHelpHandler(t *testing.T) {
	tests := map[string]struct {
		line   string
		expMsg string
	}{
		"list": {
			line: "help",
			expMsg: "Available commands:\n" +
				"  General: help, look (l), quit (q)\n" +
				"  Items: inventory (i), take (grab, get), use\n" +
				"  Movement: east (e), go, north (n), south (s), west (w)",
		},
		"command": {
			line:   "help take",
			expMsg: "take: Pick up an item in the room.\nUsage: take <item>\nAliases: grab, get",
		},
		"alias": {
			line:   "help L",
			expMsg: "look: Look around, or at an item here or in your inventory.\nUsage: look [item]\nAliases: l",
		},
		"no aliases": {
			line:   "help use",
			expMsg: "use: Use an item you carry, e.g. to unlock a door.\nUsage: use <item>",
		},
		"unknown": {
			line:   "help dance",
			expMsg: `Command "dance" is unknown.`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, pub := newTestHandler(t)
			sess := newTestSession(t)

			if _, err := h.Exec(context.Background(), sess, tt.line); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "message", pub.last(), tt.expMsg)
		})
	}
}

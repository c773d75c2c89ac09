package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

const testWorld = `{
	"starting_room": "cell",
	"rooms": [
		{"id": "cell", "name": "Cell", "description": "A damp cell.", "items": ["brass_key"], "exits": {"n": "hall"}},
		{"id": "hall", "name": "Hall", "description": "A long hall.", "locked": true, "key_id": "brass_key", "exits": {"s": "cell"}},
		{"id": "attic", "name": "Attic", "description": "Dusty."}
	],
	"items": [
		{"id": "brass_key", "name": "Brass Key", "description": "A small brass key."},
		{"id": "lamp", "name": "Lamp", "description": "A lamp."}
	]
}`

func writeWorld(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestConfig_Validate(t *testing.T) {
	worldPath := writeWorld(t, testWorld)
	off := false

	tests := map[string]struct {
		cfg    Config
		expErr []string
	}{
		"valid": {
			cfg: Config{
				World:   WorldConfig{Path: worldPath},
				Display: DisplayConfig{Width: 60, ClearScreen: &off},
				Log:     LogConfig{Level: "debug", Format: "json"},
			},
		},
		"missing world file": {
			cfg:    Config{World: WorldConfig{Path: filepath.Join(t.TempDir(), "nope.json")}},
			expErr: []string{"world: invalid path"},
		},
		"negative width": {
			cfg: Config{
				World:   WorldConfig{Path: worldPath},
				Display: DisplayConfig{Width: -1},
			},
			expErr: []string{"display: width must not be negative"},
		},
		"bad template": {
			cfg: Config{
				World:   WorldConfig{Path: worldPath},
				Display: DisplayConfig{RoomTemplate: "{{ .Name "},
			},
			expErr: []string{"display: parsing room template"},
		},
		"bad log settings": {
			cfg: Config{
				World: WorldConfig{Path: worldPath},
				Log:   LogConfig{Level: "loud", Format: "xml"},
			},
			expErr: []string{"log: parsing level", `log: unknown format "xml"`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.expErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			for _, exp := range tt.expErr {
				testutil.AssertErrorContains(t, err, exp)
			}
		})
	}
}

func TestWorldConfig_DefaultPath(t *testing.T) {
	c := WorldConfig{}
	_ = c.validate()
	testutil.AssertEqual(t, "path", c.Path, "data/world.json")
}

func TestWorldConfig_BuildWorld(t *testing.T) {
	c := WorldConfig{Path: writeWorld(t, testWorld)}

	w, err := c.BuildWorld()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, ok := w.Room("attic")
	testutil.AssertEqual(t, "attic loaded", ok, true)
}

func TestWorldConfig_BuildWorld_Strict(t *testing.T) {
	doc := strings.Replace(testWorld, `"starting_room": "cell",`, `"starting_room": "cell", "title": "Escape",`, 1)
	path := writeWorld(t, doc)

	lenient := WorldConfig{Path: path}
	if _, err := lenient.BuildWorld(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	strict := WorldConfig{Path: path, Strict: true}
	_, err := strict.BuildWorld()
	testutil.AssertErrorContains(t, err, `unknown field "title"`)
}

func TestDisplayConfig_Defaults(t *testing.T) {
	on := true
	off := false

	tests := map[string]struct {
		cfg      DisplayConfig
		expWidth int
		expClear bool
	}{
		"empty": {
			cfg:      DisplayConfig{},
			expWidth: 80,
			expClear: true,
		},
		"set": {
			cfg:      DisplayConfig{Width: 40, ClearScreen: &off},
			expWidth: 40,
			expClear: false,
		},
		"clear on": {
			cfg:      DisplayConfig{ClearScreen: &on},
			expWidth: 80,
			expClear: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "width", tt.cfg.width(), tt.expWidth)
			testutil.AssertEqual(t, "clear", tt.cfg.clearScreen(), tt.expClear)
		})
	}
}

func TestLogConfig_BuildLogger(t *testing.T) {
	tests := map[string]struct {
		cfg    LogConfig
		exp    string
		expOut bool
	}{
		"default level hides info": {
			cfg: LogConfig{},
		},
		"text": {
			cfg:    LogConfig{Level: "info"},
			exp:    "msg=hello",
			expOut: true,
		},
		"json": {
			cfg:    LogConfig{Level: "INFO", Format: "json"},
			exp:    `"msg":"hello"`,
			expOut: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := tt.cfg.BuildLogger(&buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			logger.Info("hello")

			if !tt.expOut {
				testutil.AssertEqual(t, "output", buf.String(), "")
				return
			}
			if !strings.Contains(buf.String(), tt.exp) {
				t.Errorf("expected output containing %q, got %q", tt.exp, buf.String())
			}
		})
	}
}

func TestGameWorker_Start(t *testing.T) {
	cfg := DisplayConfig{}
	w, err := (&WorldConfig{Path: writeWorld(t, testWorld)}).BuildWorld()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	players, err := cfg.BuildPlayerManager(w, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stopped := false
	var out bytes.Buffer
	worker := &gameWorker{
		players: players,
		in:      strings.NewReader("take key\nquit\n"),
		out:     &out,
		stop:    func() { stopped = true },
	}

	if err := worker.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "stopped", stopped, true)
	if !strings.Contains(out.String(), "You picked up the Brass Key.") {
		t.Errorf("expected pickup message, got %q", out.String())
	}
}

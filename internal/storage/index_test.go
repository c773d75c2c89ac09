package storage

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestIndex_Add(t *testing.T) {
	ix := NewIndex[*testSpec]()

	first := &testSpec{Name: "First"}
	second := &testSpec{Name: "Second"}

	if err := ix.Add("b-second", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ix.Add("a-first", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := ix.Get("a-first")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "record", got, first)

	_, ok = ix.Get("missing")
	testutil.AssertEqual(t, "missing found", ok, false)

	got, ok = ix.Get("b-second")
	testutil.AssertEqual(t, "second found", ok, true)
	testutil.AssertEqual(t, "second record", got, second)
}

func TestIndex_AddErrors(t *testing.T) {
	tests := map[string]struct {
		ids    []string
		expErr string
	}{
		"duplicate id": {
			ids:    []string{"cell", "cell"},
			expErr: "duplicate testSpec id: cell",
		},
		"empty id": {
			ids:    []string{""},
			expErr: "testSpec id must be set",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ix := NewIndex[*testSpec]()

			var err error
			for _, id := range tt.ids {
				err = ix.Add(id, &testSpec{})
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

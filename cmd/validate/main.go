// Command validate checks a world file without starting a game.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rodaine/table"

	"github.com/pixil98/text-adventure/internal/game"
	"github.com/pixil98/text-adventure/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lenient := fs.Bool("lenient", false, "allow fields the game does not use")
	quiet := fs.Bool("q", false, "only report problems")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: validate [-lenient] [-q] <world file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	var opts []storage.LoadOpt
	if !*lenient {
		opts = append(opts, storage.WithStrict())
	}

	w, err := game.LoadWorld(path, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if !*quiet {
		printRooms(stdout, w)
	}

	warnings, err := collectWarnings(w)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	for _, warn := range warnings {
		fmt.Fprintf(stderr, "warning: %s\n", warn)
	}

	if !*quiet {
		fmt.Fprintf(stdout, "\n%s: %d rooms, %d items, %d warnings\n", path, len(w.Rooms), len(w.Items), len(warnings))
	}
	return 0
}

func printRooms(w io.Writer, world *game.World) {
	tbl := table.New("Room", "Name", "Exits", "Items", "Lock").WithWriter(w)
	for _, r := range world.Rooms {
		var exits []string
		for _, dir := range r.Directions() {
			exits = append(exits, fmt.Sprintf("%s:%s", dir, r.Exits[dir].Get()))
		}

		lock := ""
		if r.Locked {
			lock = "locked"
			if r.KeyId != nil {
				lock = fmt.Sprintf("locked (%s)", r.KeyId.Get())
			}
		}

		tbl.AddRow(r.ID, r.Name, strings.Join(exits, " "), strings.Join(r.ItemNames(), ", "), lock)
	}
	tbl.Print()
}

func collectWarnings(w *game.World) ([]string, error) {
	var warnings []string

	unreachable, err := w.Unreachable()
	if err != nil {
		return nil, fmt.Errorf("checking reachability: %w", err)
	}
	for _, id := range unreachable {
		warnings = append(warnings, fmt.Sprintf("room %q is unreachable from the starting room", id))
	}
	for _, id := range w.Unplaced() {
		warnings = append(warnings, fmt.Sprintf("item %q is not placed in any room", id))
	}

	for _, r := range w.Rooms {
		if r.Locked && r.KeyId == nil {
			warnings = append(warnings, fmt.Sprintf("room %q is locked and has no key", r.ID))
		}
	}

	return warnings, nil
}

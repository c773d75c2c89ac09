package game

import (
	"slices"
	"strings"
)

var directionAliases = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"u":  "up",
	"d":  "down",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",
}

// directionOrder is the display order for well known directions. Anything
// else sorts after these alphabetically.
var directionOrder = []string{
	"north", "south", "east", "west",
	"northeast", "northwest", "southeast", "southwest",
	"up", "down",
}

// NormalizeDirection lower-cases a direction token and expands short
// aliases. Tokens it does not know are returned lower-cased.
func NormalizeDirection(dir string) string {
	dir = strings.ToLower(strings.TrimSpace(dir))
	if full, ok := directionAliases[dir]; ok {
		return full
	}
	return dir
}

// SortDirections sorts normalized direction tokens into display order.
func SortDirections(dirs []string) {
	slices.SortFunc(dirs, func(a, b string) int {
		ia, ib := slices.Index(directionOrder, a), slices.Index(directionOrder, b)
		switch {
		case ia >= 0 && ib >= 0:
			return ia - ib
		case ia >= 0:
			return -1
		case ib >= 0:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
}

package game

import (
	"strings"

	"github.com/pixil98/text-adventure/internal/storage"
	"golang.org/x/text/cases"
)

// matchName returns the index of the first item whose name contains query,
// ignoring case, or -1. The earliest item wins even if a later one matches
// more closely.
func matchName(items []storage.SmartIdentifier[*Item], query string) int {
	fold := cases.Fold()

	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return -1
	}

	for i, id := range items {
		if !id.Resolved() {
			continue
		}
		if strings.Contains(fold.String(id.Id().Name), q) {
			return i
		}
	}
	return -1
}

func itemNames(items []storage.SmartIdentifier[*Item]) []string {
	names := make([]string, 0, len(items))
	for _, id := range items {
		if id.Resolved() {
			names = append(names, id.Id().Name)
		}
	}
	return names
}

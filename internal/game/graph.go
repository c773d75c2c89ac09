package game

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// Unreachable returns the ids of rooms that cannot be reached from the
// starting room by following exits, in document order. Locks are ignored.
func (w *World) Unreachable() ([]string, error) {
	start := w.StartingRoom.Get()

	g := graph.New(graph.StringHash, graph.Directed())
	for _, r := range w.Rooms {
		if err := g.AddVertex(r.ID); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("adding room %q: %w", r.ID, err)
		}
	}
	for _, r := range w.Rooms {
		for _, exit := range r.Exits {
			err := g.AddEdge(r.ID, exit.Get())
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("adding exit %s -> %s: %w", r.ID, exit.Get(), err)
			}
		}
	}

	seen := map[string]bool{}
	err := graph.BFS(g, start, func(id string) bool {
		seen[id] = true
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("walking from %q: %w", start, err)
	}

	var ids []string
	for _, r := range w.Rooms {
		if !seen[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return ids, nil
}

package dsel

import (
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/planerr"
)

// resolveRecursive replaces, for every entry, a value that is itself a key
// in the mapping with that key's value, repeating until a fixed point. A
// value chasing back to its own starting key in a single hop (k -> k) is a
// harmless self-loop and stops there; any other repeated key along the
// chain is a genuine cycle.
func resolveRecursive(mapping map[model.Key]model.Selection) (map[model.Key]model.Selection, error) {
	out := make(map[model.Key]model.Selection, len(mapping))
	for k := range mapping {
		resolved, err := followChain(mapping, k)
		if err != nil {
			return nil, err
		}
		out[k] = resolved
	}
	return out, nil
}

func followChain(mapping map[model.Key]model.Selection, start model.Key) (model.Selection, error) {
	cur, ok := mapping[start]
	if !ok {
		return model.Selection{}, nil
	}

	visited := map[model.Key]bool{start: true}
	steps := 0
	for {
		nextKey, ok := cur.AsKey()
		if !ok {
			return cur, nil
		}
		if steps == 0 && nextKey.Equal(start) {
			return cur, nil
		}
		if visited[nextKey] {
			return model.Selection{}, planerr.New(planerr.RecursiveSelection,
				"cycle detected resolving %s", start)
		}
		next, ok := mapping[nextKey]
		if !ok {
			return cur, nil
		}
		visited[nextKey] = true
		cur = next
		steps++
	}
}

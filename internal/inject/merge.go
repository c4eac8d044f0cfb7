package inject

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// doc is an incoming document with its identity.
type doc struct {
	id    string
	value any
}

func docsOf[T any](items []T, id func(T) string) []doc {
	out := make([]doc, len(items))
	for i, it := range items {
		out[i] = doc{id: id(it), value: it}
	}
	return out
}

// rawID extracts the identity of a stored document. String ids compare by
// value; any other id compares by its JSON text; a missing id is "".
func rawID(raw json.RawMessage) string {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || len(probe.ID) == 0 {
		return ""
	}
	if s, err := strconv.Unquote(string(probe.ID)); err == nil {
		return s
	}
	return string(probe.ID)
}

// mergeByID appends the incoming documents whose id is not already present
// in existing. Existing documents are kept as stored.
func mergeByID(existing []json.RawMessage, incoming []doc) (merged []json.RawMessage, added []int, err error) {
	seen := make(map[string]bool, len(existing))
	for _, raw := range existing {
		seen[rawID(raw)] = true
	}
	merged = existing
	for i, d := range incoming {
		if seen[d.id] {
			continue
		}
		b, err := json.Marshal(d.value)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %q: %w", d.id, err)
		}
		merged = append(merged, b)
		seen[d.id] = true
		added = append(added, i)
	}
	return merged, added, nil
}

package reconcile

import "sort"

// index maps a join key to the first record carrying it.
type index[S any] struct {
	byKey      map[string]S
	duplicates map[string]struct{}
}

func newIndex[S any](capacity int) *index[S] {
	return &index[S]{
		byKey:      make(map[string]S, capacity),
		duplicates: make(map[string]struct{}),
	}
}

// add stores rec under key unless the key is empty or already taken.
func (ix *index[S]) add(key string, rec S) {
	if key == "" {
		return
	}
	if _, exists := ix.byKey[key]; exists {
		ix.duplicates[key] = struct{}{}
		return
	}
	ix.byKey[key] = rec
}

func (ix *index[S]) lookup(key string) (S, bool) {
	if key == "" {
		var zero S
		return zero, false
	}
	rec, ok := ix.byKey[key]
	return rec, ok
}

func (ix *index[S]) duplicateKeys() []string {
	keys := make([]string, 0, len(ix.duplicates))
	for key := range ix.duplicates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

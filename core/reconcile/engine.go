package reconcile

// ReconcileAll pairs every item with at most one status record.
//
// The join runs in two explicit passes over key indices built from statuses:
//  1. each item is looked up by its primary key;
//  2. only items left unmatched by pass 1 are looked up by their fallback key.
//
// A primary match is therefore never replaced by a fallback match. Items still
// unmatched after both passes get MatchNone and a zero Status. When several
// statuses share a key the first one wins and the key is listed in the summary.
func ReconcileAll[I, S any](items []I, statuses []S, adapter Adapter[I, S]) (*Reconciliation[I, S], error) {
	primary := newIndex[S](len(statuses))
	fallback := newIndex[S](len(statuses))

	for i, st := range statuses {
		key, err := adapter.StatusKey(st)
		if err != nil {
			return nil, &KeyError{Model: adapter.Name(), Source: "status", Index: i, Err: err}
		}
		primary.add(key, st)
		fallback.add(adapter.StatusFallbackKey(st), st)
	}

	results := make([]Result[I, S], len(items))
	summary := Summary{
		TotalItems:    len(items),
		TotalStatuses: len(statuses),
	}

	// Pass 1: primary key.
	var unmatched []int
	for i, item := range items {
		key, err := adapter.ItemKey(item)
		if err != nil {
			return nil, &KeyError{Model: adapter.Name(), Source: "item", Index: i, Err: err}
		}

		results[i] = Result[I, S]{Item: item, Match: MatchNone}
		if st, ok := primary.lookup(key); ok {
			results[i].Status = st
			results[i].Match = MatchPrimary
			summary.PrimaryMatches++
			continue
		}
		unmatched = append(unmatched, i)
	}

	// Pass 2: fallback key, unmatched rows only.
	for _, i := range unmatched {
		if st, ok := fallback.lookup(adapter.ItemFallbackKey(items[i])); ok {
			results[i].Status = st
			results[i].Match = MatchFallback
			summary.FallbackMatches++
			continue
		}
		summary.Unmatched++
	}

	summary.DuplicatePrimaryKeys = primary.duplicateKeys()
	summary.DuplicateFallbackKeys = fallback.duplicateKeys()

	return &Reconciliation[I, S]{
		Results: results,
		Summary: summary,
	}, nil
}

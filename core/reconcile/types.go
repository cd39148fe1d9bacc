package reconcile

import "fmt"

// MatchKind records which pass of the join paired an item with a status.
type MatchKind string

const (
	// MatchNone means no status record was found by either key.
	MatchNone MatchKind = "none"
	// MatchPrimary means the item matched on its primary key.
	MatchPrimary MatchKind = "primary"
	// MatchFallback means the item matched on its fallback key after the primary pass missed.
	MatchFallback MatchKind = "fallback"
)

// Result is the reconciliation output for a single item.
type Result[I, S any] struct {
	// Item is the item record, unchanged.
	Item I

	// Status is the matched status record. Zero value when Match is MatchNone.
	Status S

	// Match tells which pass produced Status.
	Match MatchKind
}

// Matched reports whether a status record was found for the item.
func (r Result[I, S]) Matched() bool {
	return r.Match != MatchNone
}

// Summary counts the outcome of a reconciliation.
type Summary struct {
	TotalItems      int `json:"total_items"`
	TotalStatuses   int `json:"total_statuses"`
	PrimaryMatches  int `json:"primary_matches"`
	FallbackMatches int `json:"fallback_matches"`
	Unmatched       int `json:"unmatched"`

	// DuplicatePrimaryKeys lists status primary keys seen more than once.
	// The first record with the key is the one used.
	DuplicatePrimaryKeys []string `json:"duplicate_primary_keys"`

	// DuplicateFallbackKeys lists status fallback keys seen more than once.
	// The first record with the key is the one used.
	DuplicateFallbackKeys []string `json:"duplicate_fallback_keys"`
}

// Reconciliation bundles per-item results with their summary.
// Results are in the same order as the input items.
type Reconciliation[I, S any] struct {
	Results []Result[I, S]
	Summary Summary
}

// Adapter extracts join keys from model-specific records.
type Adapter[I, S any] interface {
	// Name returns the model name, used in error messages.
	Name() string

	// ItemKey returns the primary key of an item. An error means the key is absent.
	ItemKey(item I) (string, error)

	// ItemFallbackKey returns the secondary key of an item, or "" if it has none.
	ItemFallbackKey(item I) string

	// StatusKey returns the primary key of a status record. An error means the key is absent.
	StatusKey(status S) (string, error)

	// StatusFallbackKey returns the secondary key of a status record, or "" if it has none.
	StatusFallbackKey(status S) string
}

// KeyError is returned when a record lacks its primary join key.
type KeyError struct {
	// Model is the adapter name.
	Model string
	// Source is "item" or "status".
	Source string
	// Index is the position of the offending record in its input slice.
	Index int
	// Err is the underlying extraction error.
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("reconcile %s: %s #%d has no primary key: %v", e.Model, e.Source, e.Index, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

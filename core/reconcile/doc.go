// Package reconcile joins two record sets (items and their status records)
// using a primary key with a secondary fallback key.
//
// The join is modelled as two explicit passes over map indices rather than a
// generic merge, so the rule "the fallback only applies to rows the primary
// key did not match" is a visible branch in ReconcileAll and can be tested on
// its own.
//
// # Adapters
//
// Model-specific key extraction lives in an Adapter. The inventory feature
// provides one for LibCal equipment, where the primary key is the equipment
// id (item "id" vs status "eid") and the fallback key is the barcode.
//
// # Rules
//
//   - Output has exactly one Result per input item, in input order.
//   - Empty fallback keys never match.
//   - Duplicate keys in the status set: first occurrence wins, and the key is
//     reported in Summary so the caller can log it.
//   - A record without a primary key aborts the run with a *KeyError.
//
// # Usage
//
//	rec, err := reconcile.ReconcileAll(items, statuses, adapter)
//	for _, r := range rec.Results {
//	    if r.Matched() { ... }
//	}
package reconcile

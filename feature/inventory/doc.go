// Package inventory builds the weekly loanable-equipment inventory report.
//
// A run is strictly sequential:
//
//  1. Authenticate against LibCal and fetch the item catalog and checkout status (Source).
//  2. Join them by equipment id with a barcode fallback (feature/inventory/reconcile).
//  3. Project each item to a seven-column Row, dropping unused fields and
//     sanitising damage notes (Project, StripTags, CollapseWhitespace).
//  4. Write <date>_Loanable_Inventory.csv and .xlsx (Exporter).
//  5. Optionally copy both files to object storage (Publisher).
//
// Old files are pruned afterwards by core/retention, driven from the command.
package inventory

package reconcile

import (
	"errors"
	"strings"

	"loanable-inventory/core/reconcile"
	"loanable-inventory/core/utils"
	"loanable-inventory/feature/inventory/models"
)

var (
	errMissingID  = errors.New(`field "id" is missing`)
	errMissingEID = errors.New(`field "eid" is missing`)
)

// Adapter joins LibCal items to status records: item "id" against status
// "eid" first, then barcode against barcode.
type Adapter struct{}

var _ reconcile.Adapter[models.Item, models.Status] = Adapter{}

// NewAdapter creates a new equipment adapter.
func NewAdapter() Adapter {
	return Adapter{}
}

// Name returns the model name.
func (Adapter) Name() string {
	return "equipment"
}

// ItemKey returns the item id as text.
func (Adapter) ItemKey(item models.Item) (string, error) {
	key := strings.TrimSpace(utils.ToString(item[models.FieldID]))
	if key == "" {
		return "", errMissingID
	}
	return key, nil
}

// ItemFallbackKey returns the item barcode without surrounding whitespace.
func (Adapter) ItemFallbackKey(item models.Item) string {
	return strings.TrimSpace(utils.ToString(item[models.FieldBarcode]))
}

// StatusKey returns the status eid as text.
func (Adapter) StatusKey(st models.Status) (string, error) {
	key := strings.TrimSpace(st.EID.String())
	if key == "" {
		return "", errMissingEID
	}
	return key, nil
}

// StatusFallbackKey returns the status barcode without surrounding whitespace.
func (Adapter) StatusFallbackKey(st models.Status) string {
	return strings.TrimSpace(st.Barcode)
}

// Reconcile joins items with statuses using the equipment adapter.
func Reconcile(items []models.Item, statuses []models.Status) (*reconcile.Reconciliation[models.Item, models.Status], error) {
	return reconcile.ReconcileAll[models.Item, models.Status](items, statuses, NewAdapter())
}

// CheckedOut reports the checked-out flag of a result; unmatched items are not checked out.
func CheckedOut(r reconcile.Result[models.Item, models.Status]) bool {
	return r.Matched() && r.Status.IsCheckedOut
}

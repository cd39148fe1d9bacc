package inventory

import (
	"loanable-inventory/core/reconcile"
	"loanable-inventory/core/utils"
	"loanable-inventory/feature/inventory/models"
	equipment "loanable-inventory/feature/inventory/reconcile"
)

// DroppedFields are catalog fields that never reach the report.
var DroppedFields = []string{
	"created",
	"bookId",
	"fromDate",
	"instructions",
	"value",
	"replacement_cost",
	"formid",
	"groupId",
	"groupTermsAndConditions",
	"locationTermsAndConditions",
	"groupName",
	"model",
	"is_checked_out",
}

// DropFields returns a copy of item without DroppedFields. Absent fields are ignored.
func DropFields(item models.Item) models.Item {
	out := make(models.Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	for _, f := range DroppedFields {
		delete(out, f)
	}
	return out
}

// Project turns reconciled results into report rows, one per result, in order.
func Project(results []reconcile.Result[models.Item, models.Status]) []models.Row {
	rows := make([]models.Row, len(results))
	for i, r := range results {
		rows[i] = projectRow(DropFields(r.Item), equipment.CheckedOut(r))
	}
	return rows
}

func projectRow(item models.Item, checkedOut bool) models.Row {
	return models.Row{
		Name:           utils.ToString(item[models.FieldName]),
		Barcode:        utils.ToString(item[models.FieldBarcode]),
		AssetNumber:    utils.ToString(item[models.FieldAssetNumber]),
		SerialNumber:   utils.ToString(item[models.FieldSerialNumber]),
		CheckoutStatus: models.CheckoutStatusOf(checkedOut),
		DSANotes:       "",
		DamageNotes:    SanitizeNotes(utils.ToString(item[models.FieldDamageNotes])),
	}
}

package models

import (
	"bytes"
	"encoding/json"

	"loanable-inventory/core/export"
	"loanable-inventory/core/utils"
)

// Item is one equipment record from the LibCal item catalog, kept as the raw
// decoded JSON object so fields the report ignores pass through untouched.
type Item map[string]any

// Item field names used by the report.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldBarcode      = "barcode"
	FieldAssetNumber  = "asset_number"
	FieldSerialNumber = "serial_number"
	FieldDamageNotes  = "damage_notes"
)

// Status is the live checkout state of one equipment item.
type Status struct {
	// EID is the equipment id; it matches Item "id".
	EID json.Number `json:"eid"`
	// Barcode is the item barcode, used when EID does not match.
	Barcode string `json:"barcode"`
	// IsCheckedOut is true while the item is on loan.
	IsCheckedOut bool `json:"is_checked_out"`
}

// UnmarshalJSON decodes a status record leniently: barcode may arrive as a
// number and is_checked_out as 0/1 or a string.
func (s *Status) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*s = Status{
		EID:          json.Number(utils.ToString(raw["eid"])),
		Barcode:      utils.ToString(raw["barcode"]),
		IsCheckedOut: utils.ToBool(raw["is_checked_out"]),
	}
	return nil
}

// CheckoutStatus is the human-readable loan state shown in the report.
type CheckoutStatus string

const (
	CheckedOut CheckoutStatus = "CHECKED OUT"
	Available  CheckoutStatus = "Available"
)

// CheckoutStatusOf maps the checked-out flag to its report label.
func CheckoutStatusOf(checkedOut bool) CheckoutStatus {
	if checkedOut {
		return CheckedOut
	}
	return Available
}

// Row is one line of the final report.
type Row struct {
	Name           string
	Barcode        string
	AssetNumber    string
	SerialNumber   string
	CheckoutStatus CheckoutStatus
	DSANotes       string
	DamageNotes    string
}

// Values returns the row cells in Columns order.
func (r Row) Values() []string {
	return []string{
		r.Name,
		r.Barcode,
		r.AssetNumber,
		r.SerialNumber,
		string(r.CheckoutStatus),
		r.DSANotes,
		r.DamageNotes,
	}
}

// Columns is the report schema: internal key (CSV header) and spreadsheet header.
var Columns = []export.Column{
	{Key: "name", Header: "Item Name"},
	{Key: "barcode", Header: "Barcode Number"},
	{Key: "asset_number", Header: "Asset#"},
	{Key: "serial_number", Header: "Serial#"},
	{Key: "checkout_status", Header: "Checkout Status"},
	{Key: "DSA_Notes", Header: "Add Notes Here for Any Issues Found"},
	{Key: "damage_notes", Header: "Current Notes on Damage"},
}

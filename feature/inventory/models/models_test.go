package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutStatusOf(t *testing.T) {
	assert.Equal(t, CheckedOut, CheckoutStatusOf(true))
	assert.Equal(t, Available, CheckoutStatusOf(false))
}

func TestRowValuesFollowColumns(t *testing.T) {
	r := Row{
		Name:           "Camera",
		Barcode:        "3900",
		AssetNumber:    "A-1",
		SerialNumber:   "SN-1",
		CheckoutStatus: Available,
		DamageNotes:    "scratch",
	}

	values := r.Values()
	assert.Len(t, values, len(Columns))
	assert.Equal(t, []string{"Camera", "3900", "A-1", "SN-1", "Available", "", "scratch"}, values)
}

func TestColumnKeys(t *testing.T) {
	keys := make([]string, len(Columns))
	for i, c := range Columns {
		keys[i] = c.Key
	}
	assert.Equal(t, []string{
		"name", "barcode", "asset_number", "serial_number",
		"checkout_status", "DSA_Notes", "damage_notes",
	}, keys)
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Status
	}{
		{"Typed", `{"eid":1,"barcode":"39000123","is_checked_out":true}`, Status{EID: "1", Barcode: "39000123", IsCheckedOut: true}},
		{"NumericBarcode", `{"eid":1,"barcode":39000123,"is_checked_out":true}`, Status{EID: "1", Barcode: "39000123", IsCheckedOut: true}},
		{"NumericFlagSet", `{"eid":"2","barcode":"B","is_checked_out":1}`, Status{EID: "2", Barcode: "B", IsCheckedOut: true}},
		{"NumericFlagClear", `{"eid":3,"barcode":"B","is_checked_out":0}`, Status{EID: "3", Barcode: "B"}},
		{"StringFlag", `{"eid":4,"is_checked_out":"true"}`, Status{EID: "4", IsCheckedOut: true}},
		{"NullFields", `{"eid":5,"barcode":null,"is_checked_out":null}`, Status{EID: "5"}},
		{"MissingEID", `{"barcode":"B"}`, Status{Barcode: "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st Status
			require.NoError(t, json.Unmarshal([]byte(tt.in), &st))
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestStatus_UnmarshalJSONPage(t *testing.T) {
	page := `[{"eid":1,"barcode":39000123,"is_checked_out":true},{"eid":2,"barcode":"39000124","is_checked_out":0}]`

	var statuses []Status
	require.NoError(t, json.Unmarshal([]byte(page), &statuses))
	require.Len(t, statuses, 2)
	assert.Equal(t, "39000123", statuses[0].Barcode)
	assert.True(t, statuses[0].IsCheckedOut)
	assert.False(t, statuses[1].IsCheckedOut)
}

func TestStatus_UnmarshalJSONRejectsNonObject(t *testing.T) {
	var st Status
	assert.Error(t, json.Unmarshal([]byte(`"eid"`), &st))
}

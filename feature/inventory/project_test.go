package inventory

import (
	"encoding/json"
	"strings"
	"testing"

	"loanable-inventory/core/reconcile"
	"loanable-inventory/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result = reconcile.Result[models.Item, models.Status]

func TestDropFields(t *testing.T) {
	item := models.Item{
		"id":                         json.Number("1"),
		"name":                       "Camera",
		"created":                    "2024-01-01",
		"replacement_cost":           json.Number("950"),
		"locationTermsAndConditions": "<p>terms</p>",
		"model":                      "R50",
	}

	out := DropFields(item)

	assert.Equal(t, models.Item{"id": json.Number("1"), "name": "Camera"}, out)
	assert.Contains(t, item, "created", "input is not modified")
	assert.Empty(t, DropFields(models.Item{}), "absent fields are tolerated")
}

func TestProject(t *testing.T) {
	results := []result{
		{
			Item: models.Item{
				"id": json.Number("1"), "name": "Canon R50", "barcode": "39001",
				"asset_number": "A-100", "serial_number": json.Number("778812"),
				"damage_notes": "<b>broken</b>\nneeds repair", "groupName": "Cameras",
			},
			Status: models.Status{EID: "1", IsCheckedOut: true},
			Match:  reconcile.MatchPrimary,
		},
		{
			Item:   models.Item{"id": json.Number("2"), "name": "Tripod", "barcode": "39002", "damage_notes": nil},
			Status: models.Status{EID: "9", Barcode: "39002", IsCheckedOut: false},
			Match:  reconcile.MatchFallback,
		},
		{
			Item:  models.Item{"id": json.Number("3"), "name": "Mic"},
			Match: reconcile.MatchNone,
		},
	}

	rows := Project(results)
	require.Len(t, rows, 3)

	assert.Equal(t, models.Row{
		Name:           "Canon R50",
		Barcode:        "39001",
		AssetNumber:    "A-100",
		SerialNumber:   "778812",
		CheckoutStatus: models.CheckedOut,
		DamageNotes:    "broken needs repair",
	}, rows[0])
	assert.Equal(t, models.Available, rows[1].CheckoutStatus)
	assert.Equal(t, "", rows[1].DamageNotes)
	assert.Equal(t, models.Available, rows[2].CheckoutStatus, "no match defaults to Available")
}

func TestProject_Invariants(t *testing.T) {
	notes := []any{"<i>x</i>\r\n\ty", nil, "plain", "<a href='z'>link</a>\n"}
	var results []result
	for i, n := range notes {
		results = append(results, result{
			Item:   models.Item{"id": json.Number(string(rune('1' + i))), "damage_notes": n},
			Status: models.Status{IsCheckedOut: i%2 == 0},
			Match:  []reconcile.MatchKind{reconcile.MatchPrimary, reconcile.MatchNone}[i%2],
		})
	}

	for _, row := range Project(results) {
		assert.Contains(t, []models.CheckoutStatus{models.CheckedOut, models.Available}, row.CheckoutStatus)
		assert.NotContains(t, row.DamageNotes, "<")
		assert.False(t, strings.ContainsAny(row.DamageNotes, "\r\n\t"))
		assert.Empty(t, row.DSANotes)
	}
}

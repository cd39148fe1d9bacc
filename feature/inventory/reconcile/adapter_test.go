package reconcile

import (
	"encoding/json"
	"testing"

	"loanable-inventory/core/reconcile"
	"loanable-inventory/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Keys(t *testing.T) {
	a := NewAdapter()

	key, err := a.ItemKey(models.Item{"id": json.Number("1234567")})
	require.NoError(t, err)
	assert.Equal(t, "1234567", key)

	_, err = a.ItemKey(models.Item{"name": "no id"})
	assert.Error(t, err)

	_, err = a.ItemKey(models.Item{"id": nil})
	assert.Error(t, err)

	key, err = a.StatusKey(models.Status{EID: "1234567"})
	require.NoError(t, err)
	assert.Equal(t, "1234567", key)

	_, err = a.StatusKey(models.Status{Barcode: "B"})
	assert.Error(t, err)

	assert.Equal(t, "39000", a.ItemFallbackKey(models.Item{"barcode": "39000"}))
	assert.Equal(t, "", a.ItemFallbackKey(models.Item{"barcode": nil}))
	assert.Equal(t, "39000", a.ItemFallbackKey(models.Item{"barcode": " 39000\t"}))
	assert.Equal(t, "39000", a.StatusFallbackKey(models.Status{Barcode: "39000 "}))
	assert.Equal(t, "", a.StatusFallbackKey(models.Status{Barcode: "  "}))
}

func TestReconcile_FallbackIgnoresSurroundingWhitespace(t *testing.T) {
	items := []models.Item{{"id": json.Number("1"), "barcode": " B1"}}
	statuses := []models.Status{{EID: "99", Barcode: "B1 ", IsCheckedOut: true}}

	rec, err := Reconcile(items, statuses)
	require.NoError(t, err)
	require.Len(t, rec.Results, 1)
	assert.Equal(t, reconcile.MatchFallback, rec.Results[0].Match)
	assert.True(t, CheckedOut(rec.Results[0]))
}

func TestReconcile_EquipmentRules(t *testing.T) {
	items := []models.Item{
		{"id": json.Number("1"), "barcode": "B1"}, // id match, checked out
		{"id": json.Number("2"), "barcode": "B2"}, // id match available, barcode collides with a checked-out status
		{"id": json.Number("3"), "barcode": "B3"}, // barcode fallback
		{"id": json.Number("4"), "barcode": "B4"}, // no match
	}
	statuses := []models.Status{
		{EID: "1", Barcode: "B1", IsCheckedOut: true},
		{EID: "2", Barcode: "old", IsCheckedOut: false},
		{EID: "20", Barcode: "B2", IsCheckedOut: true},
		{EID: "30", Barcode: "B3", IsCheckedOut: true},
	}

	rec, err := Reconcile(items, statuses)
	require.NoError(t, err)

	want := []struct {
		match reconcile.MatchKind
		out   bool
	}{
		{reconcile.MatchPrimary, true},
		{reconcile.MatchPrimary, false},
		{reconcile.MatchFallback, true},
		{reconcile.MatchNone, false},
	}
	for i, w := range want {
		assert.Equal(t, w.match, rec.Results[i].Match, "item %d", i)
		assert.Equal(t, w.out, CheckedOut(rec.Results[i]), "item %d", i)
	}
}

func TestReconcile_MissingEID(t *testing.T) {
	_, err := Reconcile([]models.Item{{"id": json.Number("1")}}, []models.Status{{Barcode: "B"}})

	var ke *reconcile.KeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "status", ke.Source)
	assert.Equal(t, "equipment", ke.Model)
}

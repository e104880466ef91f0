package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProduct(t *testing.T) {
	line := `{
		"id": 1,
		"name": "Aurora Tee",
		"description": "A soft cotton tee.",
		"inventory_tracking": "variant",
		"inventory_level": 0,
		"exporter_metadata": {"batch": 42},
		"options": [
			{"id": 10, "type": "dropdown", "display_name": "Size", "values": [
				{"id": 100, "label": "Small", "is_default": false, "image_url": ""},
				{"id": 101, "label": "Medium", "is_default": true, "image_url": ""}
			]}
		],
		"variants": [
			{"id": 1000, "sku": "AUR-S", "price": 24.00, "inventory_level": 12,
			 "purchasing_disabled": false, "purchasing_disabled_message": "",
			 "option_values": [{"id": 100, "option_id": 10, "label": "Small"}]},
			{"id": 1001, "sku": "AUR-M", "calculated_price": "26.50", "inventory_level": 0,
			 "purchasing_disabled": true, "purchasing_disabled_message": "Back soon",
			 "option_values": [{"id": 101, "option_id": 10, "label": "Medium"}]}
		]
	}`

	doc, err := decodeProduct([]byte(line))
	require.NoError(t, err)

	assert.Equal(t, int64(1), doc.ID)
	assert.Equal(t, "Aurora Tee", doc.Name)
	assert.Equal(t, "variant", doc.InventoryTracking)

	require.Len(t, doc.Options, 1)
	assert.Equal(t, "dropdown", doc.Options[0].Type)
	require.Len(t, doc.Options[0].Values, 2)
	assert.True(t, doc.Options[0].Values[1].IsDefault)

	require.Len(t, doc.Variants, 2)
	assert.Equal(t, "AUR-S", doc.Variants[0].SKU)
	assert.True(t, decimal.RequireFromString("24").Equal(doc.Variants[0].Price), "numeric price")
	assert.True(t, decimal.RequireFromString("26.5").Equal(doc.Variants[1].Price), "quoted price")
	assert.True(t, doc.Variants[1].PurchasingDisabled)
	require.Len(t, doc.Variants[0].OptionValues, 1)
	assert.Equal(t, int64(10), doc.Variants[0].OptionValues[0].OptionID)
}

func TestDecodeProduct_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "missing id", line: `{"name": "No ID"}`},
		{name: "zero id", line: `{"id": 0, "name": "Zero"}`},
		{name: "not json", line: `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeProduct([]byte(tt.line))
			assert.Error(t, err)
		})
	}
}

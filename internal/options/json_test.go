package options

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varko/storefront-options/internal/catalog"
)

func TestEncodeVariants(t *testing.T) {
	views := []VariantView{
		{
			VariantID:       5,
			Options:         []catalog.VariantOptionValue{{ID: 10, OptionID: 1, Label: "Small"}},
			OptionIDs:       []int64{10},
			Inventory:       3,
			Disabled:        true,
			DisabledMessage: "Back soon",
			SKU:             "A",
			Price:           decimal.RequireFromString("9.99"),
			FormattedPrice:  "$9.99",
		},
	}

	raw := EncodeVariants(views)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)

	v := decoded[0]
	assert.EqualValues(t, 5, v["variant_id"])
	assert.EqualValues(t, 3, v["inventory"])
	assert.Equal(t, true, v["disabled"])
	assert.Equal(t, "Back soon", v["disabled_message"])
	assert.Equal(t, "A", v["sku"])
	assert.EqualValues(t, 9.99, v["price"])
	assert.Equal(t, "$9.99", v["formatted_price"])
	assert.Equal(t, []any{map[string]any{"id": float64(10), "option_id": float64(1), "label": "Small"}}, v["options"])
	assert.Equal(t, []any{float64(10)}, v["option_ids"])
}

func TestEncodeVariants_Empty(t *testing.T) {
	assert.Equal(t, "[]", string(EncodeVariants(nil)))
}

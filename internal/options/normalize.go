// Package options implements the product-options pipeline: normalizing raw
// variant records into a uniform view model, resolving the selection implied
// by a requested variant, and dispatching each option to its renderer.
//
// The whole pipeline is a pure, request-scoped transform. It never mutates
// catalog-owned records; selection state is applied to per-request copies.
package options

import (
	"github.com/shopspring/decimal"

	"github.com/varko/storefront-options/internal/catalog"
)

// InventoryUnlimited marks a variant whose stock is not tracked.
const InventoryUnlimited = -1

// Formatter renders a monetary amount for display.
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// VariantView is the normalized, JSON-serializable variant record the page
// embeds for client-side selection logic.
type VariantView struct {
	VariantID       int64
	Options         []catalog.VariantOptionValue
	OptionIDs       []int64
	Inventory       int
	Disabled        bool
	DisabledMessage string
	SKU             string
	Price           decimal.Decimal
	FormattedPrice  string
}

// Normalize converts raw variant records into VariantViews, resolving each
// variant's inventory from the product's tracking mode:
//
//   - none: stock is untracked, every variant reports InventoryUnlimited
//   - variant: each variant reports its own inventory level
//   - product (or any unrecognized mode): every variant reports the
//     product-level inventory
//
// The disabled message is only carried through while purchasing is actually
// disabled. Prices pass through unchanged and are additionally formatted
// with the given Formatter.
func Normalize(mode catalog.TrackingMode, productLevel int, variants []catalog.Variant, money Formatter) []VariantView {
	views := make([]VariantView, len(variants))
	for i, v := range variants {
		inventory := productLevel
		switch mode {
		case catalog.TrackingNone:
			inventory = InventoryUnlimited
		case catalog.TrackingVariant:
			inventory = v.InventoryLevel
		}

		optionIDs := make([]int64, len(v.OptionValues))
		for j, ov := range v.OptionValues {
			optionIDs[j] = ov.ID
		}

		message := ""
		if v.PurchasingDisabled {
			message = v.PurchasingDisabledMessage
		}

		views[i] = VariantView{
			VariantID:       v.ID,
			Options:         v.OptionValues,
			OptionIDs:       optionIDs,
			Inventory:       inventory,
			Disabled:        v.PurchasingDisabled,
			DisabledMessage: message,
			SKU:             v.SKU,
			Price:           v.CalculatedPrice,
			FormattedPrice:  money.Format(v.CalculatedPrice),
		}
	}
	return views
}

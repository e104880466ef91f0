package options

import (
	"context"

	"github.com/varko/storefront-options/internal/catalog"
)

// ViewData is the assembled output of the component: the product itself, the
// rendered option fragments in catalog order, and the normalized variant
// table for client-side scripting.
type ViewData struct {
	Product  *catalog.Product
	Options  []string
	Variants []VariantView
}

// Component orchestrates the pipeline for one product page: normalize the
// variants, resolve the requested selection, render the option controls.
type Component struct {
	dispatcher *Dispatcher
	money      Formatter
}

// NewComponent builds a Component from its two collaborators.
func NewComponent(dispatcher *Dispatcher, money Formatter) *Component {
	return &Component{
		dispatcher: dispatcher,
		money:      money,
	}
}

// Data assembles the view data for a product. requestedVariant is the
// sanitized variant_id query parameter; values below 1 mean no variant is
// addressed and leave the catalog's own defaults in place. Everything is
// recomputed per call, so identical inputs always produce identical output.
func (c *Component) Data(ctx context.Context, product *catalog.Product, requestedVariant int64) ViewData {
	variants := Normalize(
		product.Source.InventoryTracking,
		product.Source.InventoryLevel,
		product.Source.Variants,
		c.money,
	)
	selected := SelectedOptions(requestedVariant, variants)

	return ViewData{
		Product:  product,
		Options:  c.dispatcher.RenderAll(ctx, product.Options, selected),
		Variants: variants,
	}
}

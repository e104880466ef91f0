// Package catalog defines the read-only product catalog domain: products,
// their configurable options, and the purchasable variants each combination
// of option values maps to. The catalog is owned by the storage layer;
// everything downstream treats these records as immutable.
package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// TrackingMode is the catalog-level policy for how stock is tracked.
type TrackingMode string

const (
	// TrackingNone means stock is not tracked at all.
	TrackingNone TrackingMode = "none"
	// TrackingVariant means each variant carries its own inventory level.
	TrackingVariant TrackingMode = "variant"
	// TrackingProduct means one inventory level covers the whole product.
	TrackingProduct TrackingMode = "product"
)

// OptionType declares which UI control an option renders as.
type OptionType string

const (
	TypeDropdown              OptionType = "dropdown"
	TypeRadioButtons          OptionType = "radio_buttons"
	TypeRectangles            OptionType = "rectangles"
	TypeSwatch                OptionType = "swatch"
	TypeProductList           OptionType = "product_list"
	TypeProductListWithImages OptionType = "product_list_with_images"
)

// Product is a catalog item together with everything the product page needs
// to render its option controls.
type Product struct {
	ID          int64
	Name        string
	Description string
	Options     []Option
	Source      SourceData
}

// SourceData carries the inventory policy and the raw variant records as
// stored upstream.
type SourceData struct {
	InventoryTracking TrackingMode
	InventoryLevel    int
	Variants          []Variant
}

// Option is one configurable attribute of a product, e.g. "Color".
type Option struct {
	ID          int64
	Type        OptionType
	DisplayName string
	Values      []OptionValue
}

// OptionValue is one choice within an option. IsDefault reflects the
// catalog's own default, not the per-request selection.
type OptionValue struct {
	ID        int64
	Label     string
	IsDefault bool
	ImageURL  string
}

// Variant is one purchasable combination of option values.
type Variant struct {
	ID                        int64
	OptionValues              []VariantOptionValue
	InventoryLevel            int
	PurchasingDisabled        bool
	PurchasingDisabledMessage string
	SKU                       string
	CalculatedPrice           decimal.Decimal
}

// VariantOptionValue pins one option to a concrete value for a variant.
type VariantOptionValue struct {
	ID       int64
	OptionID int64
	Label    string
}

// Repository defines read operations for the product catalog.
type Repository interface {
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

package options

import (
	"github.com/go-faster/jx"
)

// EncodeVariants serializes the variant table as a JSON array for the
// client-side script embedded in the product page. Prices are written as raw
// decimal numbers so no float precision is lost on the wire.
func EncodeVariants(views []VariantView) []byte {
	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for i := range views {
			encodeVariant(e, &views[i])
		}
	})
	return e.Bytes()
}

func encodeVariant(e *jx.Encoder, v *VariantView) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("variant_id", func(e *jx.Encoder) { e.Int64(v.VariantID) })
		e.Field("options", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, ov := range v.Options {
					e.Obj(func(e *jx.Encoder) {
						e.Field("id", func(e *jx.Encoder) { e.Int64(ov.ID) })
						e.Field("option_id", func(e *jx.Encoder) { e.Int64(ov.OptionID) })
						e.Field("label", func(e *jx.Encoder) { e.Str(ov.Label) })
					})
				}
			})
		})
		e.Field("option_ids", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, id := range v.OptionIDs {
					e.Int64(id)
				}
			})
		})
		e.Field("inventory", func(e *jx.Encoder) { e.Int(v.Inventory) })
		e.Field("disabled", func(e *jx.Encoder) { e.Bool(v.Disabled) })
		e.Field("disabled_message", func(e *jx.Encoder) { e.Str(v.DisabledMessage) })
		e.Field("sku", func(e *jx.Encoder) { e.Str(v.SKU) })
		e.Field("price", func(e *jx.Encoder) { e.RawStr(v.Price.String()) })
		e.Field("formatted_price", func(e *jx.Encoder) { e.Str(v.FormattedPrice) })
	})
}

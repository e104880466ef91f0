package main

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// productDoc is one decoded feed line: a product together with its options
// and variants.
type productDoc struct {
	ID                int64
	Name              string
	Description       string
	InventoryTracking string
	InventoryLevel    int
	Options           []optionDoc
	Variants          []variantDoc
}

type optionDoc struct {
	ID          int64
	Type        string
	DisplayName string
	Values      []optionValueDoc
}

type optionValueDoc struct {
	ID        int64
	Label     string
	IsDefault bool
	ImageURL  string
}

type variantDoc struct {
	ID                        int64
	SKU                       string
	Price                     decimal.Decimal
	InventoryLevel            int
	PurchasingDisabled        bool
	PurchasingDisabledMessage string
	OptionValues              []variantOptionValueDoc
}

type variantOptionValueDoc struct {
	ID       int64
	OptionID int64
	Label    string
}

// decodeProduct parses one feed line. Unknown fields are skipped so feed
// exporters can add fields without breaking older importers.
func decodeProduct(raw []byte) (productDoc, error) {
	var doc productDoc
	d := jx.DecodeBytes(raw)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			doc.ID, err = d.Int64()
		case "name":
			doc.Name, err = d.Str()
		case "description":
			doc.Description, err = d.Str()
		case "inventory_tracking":
			doc.InventoryTracking, err = d.Str()
		case "inventory_level":
			doc.InventoryLevel, err = d.Int()
		case "options":
			err = d.Arr(func(d *jx.Decoder) error {
				opt, err := decodeOption(d)
				if err != nil {
					return err
				}
				doc.Options = append(doc.Options, opt)
				return nil
			})
		case "variants":
			err = d.Arr(func(d *jx.Decoder) error {
				v, err := decodeVariant(d)
				if err != nil {
					return err
				}
				doc.Variants = append(doc.Variants, v)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return productDoc{}, errors.Wrap(err, "decode product")
	}
	if doc.ID < 1 {
		return productDoc{}, errors.New("product id missing or invalid")
	}
	return doc, nil
}

func decodeOption(d *jx.Decoder) (optionDoc, error) {
	var opt optionDoc
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			opt.ID, err = d.Int64()
		case "type":
			opt.Type, err = d.Str()
		case "display_name":
			opt.DisplayName, err = d.Str()
		case "values":
			err = d.Arr(func(d *jx.Decoder) error {
				var v optionValueDoc
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					var err error
					switch key {
					case "id":
						v.ID, err = d.Int64()
					case "label":
						v.Label, err = d.Str()
					case "is_default":
						v.IsDefault, err = d.Bool()
					case "image_url":
						v.ImageURL, err = d.Str()
					default:
						err = d.Skip()
					}
					return err
				}); err != nil {
					return err
				}
				opt.Values = append(opt.Values, v)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
	return opt, err
}

func decodeVariant(d *jx.Decoder) (variantDoc, error) {
	var v variantDoc
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			v.ID, err = d.Int64()
		case "sku":
			v.SKU, err = d.Str()
		case "price", "calculated_price":
			v.Price, err = decodeDecimal(d)
		case "inventory_level":
			v.InventoryLevel, err = d.Int()
		case "purchasing_disabled":
			v.PurchasingDisabled, err = d.Bool()
		case "purchasing_disabled_message":
			v.PurchasingDisabledMessage, err = d.Str()
		case "option_values":
			err = d.Arr(func(d *jx.Decoder) error {
				var ov variantOptionValueDoc
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					var err error
					switch key {
					case "id":
						ov.ID, err = d.Int64()
					case "option_id":
						ov.OptionID, err = d.Int64()
					case "label":
						ov.Label, err = d.Str()
					default:
						err = d.Skip()
					}
					return err
				}); err != nil {
					return err
				}
				v.OptionValues = append(v.OptionValues, ov)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
	return v, err
}

// decodeDecimal reads a price that feeds export either as a JSON number or
// as a quoted decimal string.
func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	n, err := d.Num()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(strings.Trim(n.String(), `"`))
}

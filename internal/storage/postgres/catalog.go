package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varko/storefront-options/internal/catalog"
)

const (
	getProductSQL = `SELECT id, name, description, inventory_tracking, inventory_level
		FROM products WHERE id = $1`

	getOptionsSQL = `SELECT o.id, o.type, o.display_name, v.id, v.label, v.is_default, v.image_url
		FROM product_options o
		JOIN option_values v ON v.option_id = o.id
		WHERE o.product_id = $1
		ORDER BY o.sort_order, o.id, v.sort_order, v.id`

	getVariantsSQL = `SELECT id, sku, calculated_price, inventory_level,
			purchasing_disabled, purchasing_disabled_message
		FROM variants WHERE product_id = $1 ORDER BY id`

	getVariantOptionValuesSQL = `SELECT vov.variant_id, vov.option_value_id, vov.option_id, vov.label
		FROM variant_option_values vov
		JOIN variants vt ON vt.id = vov.variant_id
		WHERE vt.product_id = $1
		ORDER BY vov.variant_id, vov.sort_order, vov.option_value_id`
)

var _ catalog.Repository = (*CatalogRepository)(nil)

// CatalogRepository implements catalog.Repository backed by PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a CatalogRepository that uses the given pool.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// GetProduct assembles a full product, its options with their values, and
// its variants with the option values each one pins. Ordering follows the
// catalog's sort columns throughout.
func (r *CatalogRepository) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	var p catalog.Product
	err := r.pool.QueryRow(ctx, getProductSQL, id).Scan(
		&p.ID, &p.Name, &p.Description,
		&p.Source.InventoryTracking, &p.Source.InventoryLevel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get product %d", id)
	}

	if p.Options, err = r.getOptions(ctx, id); err != nil {
		return nil, errors.Wrapf(err, "get options for product %d", id)
	}
	if p.Source.Variants, err = r.getVariants(ctx, id); err != nil {
		return nil, errors.Wrapf(err, "get variants for product %d", id)
	}

	return &p, nil
}

// getOptions loads the product's options with their values, relying on the
// query's ordering to group value rows under their option.
func (r *CatalogRepository) getOptions(ctx context.Context, productID int64) ([]catalog.Option, error) {
	rows, err := r.pool.Query(ctx, getOptionsSQL, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []catalog.Option
	for rows.Next() {
		var (
			opt   catalog.Option
			value catalog.OptionValue
		)
		if err := rows.Scan(
			&opt.ID, &opt.Type, &opt.DisplayName,
			&value.ID, &value.Label, &value.IsDefault, &value.ImageURL,
		); err != nil {
			return nil, err
		}

		if n := len(opts); n > 0 && opts[n-1].ID == opt.ID {
			opts[n-1].Values = append(opts[n-1].Values, value)
			continue
		}
		opt.Values = []catalog.OptionValue{value}
		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

func (r *CatalogRepository) getVariants(ctx context.Context, productID int64) ([]catalog.Variant, error) {
	rows, err := r.pool.Query(ctx, getVariantsSQL, productID)
	if err != nil {
		return nil, err
	}

	variants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Variant, error) {
		var v catalog.Variant
		err := row.Scan(
			&v.ID, &v.SKU, &v.CalculatedPrice, &v.InventoryLevel,
			&v.PurchasingDisabled, &v.PurchasingDisabledMessage,
		)
		return v, err
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*catalog.Variant, len(variants))
	for i := range variants {
		byID[variants[i].ID] = &variants[i]
	}

	vovRows, err := r.pool.Query(ctx, getVariantOptionValuesSQL, productID)
	if err != nil {
		return nil, err
	}
	defer vovRows.Close()

	for vovRows.Next() {
		var (
			variantID int64
			ov        catalog.VariantOptionValue
		)
		if err := vovRows.Scan(&variantID, &ov.ID, &ov.OptionID, &ov.Label); err != nil {
			return nil, err
		}
		if v, ok := byID[variantID]; ok {
			v.OptionValues = append(v.OptionValues, ov)
		}
	}
	return variants, vovRows.Err()
}

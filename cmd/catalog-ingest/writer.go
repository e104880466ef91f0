package main

import (
	"context"
	"log/slog"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	upsertProductSQL = `INSERT INTO products (id, name, description, inventory_tracking, inventory_level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			inventory_tracking = EXCLUDED.inventory_tracking,
			inventory_level = EXCLUDED.inventory_level`

	upsertOptionSQL = `INSERT INTO product_options (id, product_id, type, display_name, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type,
			display_name = EXCLUDED.display_name,
			sort_order = EXCLUDED.sort_order`

	upsertOptionValueSQL = `INSERT INTO option_values (id, option_id, label, is_default, image_url, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			is_default = EXCLUDED.is_default,
			image_url = EXCLUDED.image_url,
			sort_order = EXCLUDED.sort_order`

	upsertVariantSQL = `INSERT INTO variants (id, product_id, sku, calculated_price, inventory_level,
			purchasing_disabled, purchasing_disabled_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			sku = EXCLUDED.sku,
			calculated_price = EXCLUDED.calculated_price,
			inventory_level = EXCLUDED.inventory_level,
			purchasing_disabled = EXCLUDED.purchasing_disabled,
			purchasing_disabled_message = EXCLUDED.purchasing_disabled_message`

	upsertVariantOptionValueSQL = `INSERT INTO variant_option_values
			(variant_id, option_value_id, option_id, label, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (variant_id, option_value_id) DO UPDATE SET
			option_id = EXCLUDED.option_id,
			label = EXCLUDED.label,
			sort_order = EXCLUDED.sort_order`
)

type ingestStats struct {
	products      int64
	variants      int64
	duplicateSKUs int64
}

// feedWriter owns the database side of the ingest: one writer goroutine, so
// the bloom filter needs no locking.
type feedWriter struct {
	pool  *pgxpool.Pool
	seen  *bloom.BloomFilter
	stats *ingestStats
}

// write upserts one product document in a single batch. Variants whose SKU
// was already seen in this run are skipped: a feed that lists the same SKU
// under two products is almost always a re-export glitch, and the unique SKU
// index would reject the second copy anyway. The bloom filter can rarely
// flag a fresh SKU as seen; the skip log carries enough to chase that down.
func (w *feedWriter) write(ctx context.Context, doc productDoc) error {
	b := &pgx.Batch{}
	b.Queue(upsertProductSQL, doc.ID, doc.Name, doc.Description, doc.InventoryTracking, doc.InventoryLevel)

	for i, opt := range doc.Options {
		b.Queue(upsertOptionSQL, opt.ID, doc.ID, opt.Type, opt.DisplayName, i)
		for j, v := range opt.Values {
			b.Queue(upsertOptionValueSQL, v.ID, opt.ID, v.Label, v.IsDefault, v.ImageURL, j)
		}
	}

	for _, variant := range doc.Variants {
		if w.seen.TestAndAddString(variant.SKU) {
			slog.Warn("duplicate SKU in feed, variant skipped",
				slog.Int64("product_id", doc.ID),
				slog.Int64("variant_id", variant.ID),
				slog.String("sku", variant.SKU),
			)
			w.stats.duplicateSKUs++
			continue
		}

		b.Queue(upsertVariantSQL,
			variant.ID, doc.ID, variant.SKU, variant.Price, variant.InventoryLevel,
			variant.PurchasingDisabled, variant.PurchasingDisabledMessage,
		)
		for k, ov := range variant.OptionValues {
			b.Queue(upsertVariantOptionValueSQL, variant.ID, ov.ID, ov.OptionID, ov.Label, k)
		}
		w.stats.variants++
	}

	if err := w.pool.SendBatch(ctx, b).Close(); err != nil {
		return errors.Wrap(err, "send batch")
	}
	w.stats.products++
	return nil
}

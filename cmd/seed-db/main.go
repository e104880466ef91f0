// Command seed-db loads a small demo catalog so the product page has
// something to render locally.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"

	"github.com/varko/storefront-options/internal/storage/postgres"
)

func main() {
	var databaseURL string

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL string) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	slog.Info("seeding demo catalog")

	for _, stmt := range seedStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "seed statement")
		}
	}
	return nil
}

// One shirt with a size dropdown and a color swatch, tracked per variant.
// IDs are fixed so re-running the seeder is a no-op.
var seedStatements = []string{
	`INSERT INTO products (id, name, description, inventory_tracking, inventory_level)
	 VALUES (1, 'Aurora Tee', 'A soft cotton tee in three colors.', 'variant', 0)
	 ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO product_options (id, product_id, type, display_name, sort_order) VALUES
		(10, 1, 'dropdown', 'Size', 0),
		(11, 1, 'swatch', 'Color', 1)
	 ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO option_values (id, option_id, label, is_default, image_url, sort_order) VALUES
		(100, 10, 'Small', false, '', 0),
		(101, 10, 'Medium', true, '', 1),
		(102, 10, 'Large', false, '', 2),
		(110, 11, 'Slate', true, '', 0),
		(111, 11, 'Ochre', false, '', 1),
		(112, 11, 'Moss', false, '', 2)
	 ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO variants (id, product_id, sku, calculated_price, inventory_level,
			purchasing_disabled, purchasing_disabled_message) VALUES
		(1000, 1, 'AUR-S-SLATE', 24.00, 12, false, ''),
		(1001, 1, 'AUR-M-SLATE', 24.00, 7, false, ''),
		(1002, 1, 'AUR-L-SLATE', 24.00, 0, false, ''),
		(1003, 1, 'AUR-S-OCHRE', 26.00, 4, false, ''),
		(1004, 1, 'AUR-M-OCHRE', 26.00, 9, false, ''),
		(1005, 1, 'AUR-M-MOSS', 26.00, 0, true, 'Back in stock soon')
	 ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO variant_option_values (variant_id, option_value_id, option_id, label, sort_order) VALUES
		(1000, 100, 10, 'Small', 0),  (1000, 110, 11, 'Slate', 1),
		(1001, 101, 10, 'Medium', 0), (1001, 110, 11, 'Slate', 1),
		(1002, 102, 10, 'Large', 0),  (1002, 110, 11, 'Slate', 1),
		(1003, 100, 10, 'Small', 0),  (1003, 111, 11, 'Ochre', 1),
		(1004, 101, 10, 'Medium', 0), (1004, 111, 11, 'Ochre', 1),
		(1005, 101, 10, 'Medium', 0), (1005, 112, 11, 'Moss', 1)
	 ON CONFLICT (variant_id, option_value_id) DO NOTHING`,
}

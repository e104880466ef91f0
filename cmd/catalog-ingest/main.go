// Command catalog-ingest imports a product feed into the catalog database.
//
// A feed is a set of JSONL files (optionally gzip-compressed), one product
// document per line, each carrying the product's options and variants. Files
// are parsed concurrently; a bloom filter over variant SKUs flags duplicates
// across files so a re-exported feed cannot clobber another product's
// variants.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/varko/storefront-options/internal/storage/postgres"
)

const (
	bloomCapacity = 10_000_000
	bloomFPR      = 0.0001

	// Large feed lines: a product with many options can exceed bufio's
	// default token size.
	maxLineBytes = 4 << 20
)

func main() {
	var (
		dataDir     string
		databaseURL string
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing catalog feed files (*.jsonl, *.jsonl.gz)")
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

	if err := run(ctx, dataDir, databaseURL); err != nil {
		slog.Error("catalog ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog ingest completed successfully")
}

func run(ctx context.Context, dataDir, databaseURL string) error {
	files, err := feedFiles(dataDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no feed files found in %s", dataDir)
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	slog.Info("parsing feed files", slog.Int("files", len(files)))

	// Parsers fan out per file; a single writer owns the bloom filter and
	// the database so SKU de-duplication stays deterministic.
	docs := make(chan productDoc, 64)
	seenSKUs := bloom.NewWithEstimates(bloomCapacity, bloomFPR)

	g, ctx := errgroup.WithContext(ctx)

	parsers, parseCtx := errgroup.WithContext(ctx)
	for _, file := range files {
		parsers.Go(func() error {
			return parseFeedFile(parseCtx, file, docs)
		})
	}
	g.Go(func() error {
		defer close(docs)
		return parsers.Wait()
	})

	var stats ingestStats
	g.Go(func() error {
		w := &feedWriter{pool: pool, seen: seenSKUs, stats: &stats}
		for doc := range docs {
			if err := w.write(ctx, doc); err != nil {
				return errors.Wrapf(err, "write product %d", doc.ID)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("ingest finished",
		slog.Int64("products", stats.products),
		slog.Int64("variants", stats.variants),
		slog.Int64("duplicate_skus_skipped", stats.duplicateSKUs),
	)
	return nil
}

// feedFiles lists the feed files in dir, sorted by name.
func feedFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.jsonl", "*.jsonl.gz"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "glob feed files")
		}
		files = append(files, matches...)
	}
	return files, nil
}

// parseFeedFile streams one feed file line by line, decoding each product
// document and sending it downstream.
func parseFeedFile(ctx context.Context, path string, docs chan<- productDoc) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return errors.Wrapf(err, "open gzip %s", path)
		}
		defer gz.Close()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		doc, err := decodeProduct(raw)
		if err != nil {
			return errors.Wrapf(err, "%s line %d", path, line)
		}

		select {
		case docs <- doc:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return errors.Wrapf(scanner.Err(), "scan %s", path)
}

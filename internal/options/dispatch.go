package options

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/varko/storefront-options/internal/catalog"
)

// Field is the render-ready shape of one option control. Its values are
// per-request copies; mutating them never touches catalog records.
type Field struct {
	ID     int64
	Label  string
	Values []ValueView
}

// ValueView is one selectable value within a Field. IsDefault carries the
// request's selection state once a variant has been resolved.
type ValueView struct {
	ID        int64
	Label     string
	IsDefault bool
	ImageURL  string
}

// Renderer produces the markup fragment for one option control.
type Renderer interface {
	Render(field Field) (string, error)
}

// Dispatcher maps option types to renderers and produces the ordered list of
// option fragments for a product. Option types without a registered renderer
// contribute no fragment; they are logged and counted rather than failing
// the page.
type Dispatcher struct {
	registry map[catalog.OptionType]Renderer
	lg       *zap.Logger
	skipped  metric.Int64Counter
}

// NewDispatcher builds a Dispatcher over the given type registry.
func NewDispatcher(registry map[catalog.OptionType]Renderer, lg *zap.Logger, mp metric.MeterProvider) (*Dispatcher, error) {
	skipped, err := mp.Meter("storefront-options").Int64Counter("storefront.options.skipped",
		metric.WithDescription("Options dropped from rendering (unknown type or failed render)"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create skipped counter")
	}
	return &Dispatcher{
		registry: registry,
		lg:       lg,
		skipped:  skipped,
	}, nil
}

// RenderAll renders each option in input order, applying the selection map
// to a copy of the option's values first. The result contains one fragment
// per successfully rendered option: unknown types, failed renders, and empty
// fragments are filtered out, so the output may be shorter than the input.
func (d *Dispatcher) RenderAll(ctx context.Context, opts []catalog.Option, selected map[int64]int64) []string {
	fragments := make([]string, 0, len(opts))
	for _, opt := range opts {
		renderer, ok := d.registry[opt.Type]
		if !ok {
			d.lg.Warn("no renderer for option type, skipping",
				zap.Int64("option_id", opt.ID),
				zap.String("option_type", string(opt.Type)),
			)
			d.skipped.Add(ctx, 1, metric.WithAttributes(
				attribute.String("reason", "unknown_type"),
				attribute.String("option_type", string(opt.Type)),
			))
			continue
		}

		fragment, err := renderer.Render(Field{
			ID:     opt.ID,
			Label:  opt.DisplayName,
			Values: applySelection(opt, selected),
		})
		if err != nil {
			d.lg.Warn("option render failed, skipping",
				zap.Int64("option_id", opt.ID),
				zap.String("option_type", string(opt.Type)),
				zap.Error(err),
			)
			d.skipped.Add(ctx, 1, metric.WithAttributes(
				attribute.String("reason", "render_error"),
				attribute.String("option_type", string(opt.Type)),
			))
			continue
		}
		if fragment == "" {
			continue
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}

// applySelection copies the option's values and flags exactly the selected
// one as default. When the option has no entry in the selection map the
// catalog's own default flags pass through untouched.
func applySelection(opt catalog.Option, selected map[int64]int64) []ValueView {
	values := make([]ValueView, len(opt.Values))
	selectedValue, hasSelection := selected[opt.ID]
	for i, v := range opt.Values {
		isDefault := v.IsDefault
		if hasSelection {
			isDefault = v.ID == selectedValue
		}
		values[i] = ValueView{
			ID:        v.ID,
			Label:     v.Label,
			IsDefault: isDefault,
			ImageURL:  v.ImageURL,
		}
	}
	return values
}

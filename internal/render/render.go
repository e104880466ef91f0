// Package render holds the concrete option-control renderers. Each option
// type maps to one embedded html/template fragment; the dispatcher only sees
// the Renderer capability and stays ignorant of the markup.
package render

import (
	"embed"
	"html/template"
	"strings"

	"github.com/go-faster/errors"

	"github.com/varko/storefront-options/internal/catalog"
	"github.com/varko/storefront-options/internal/options"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// fragmentRenderer renders a field through one named fragment template.
type fragmentRenderer struct {
	name string
}

// Render executes the fragment template for the field. Labels and image URLs
// go through html/template's contextual escaping.
func (r fragmentRenderer) Render(field options.Field) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, r.name, field); err != nil {
		return "", errors.Wrapf(err, "execute template %s", r.name)
	}
	return sb.String(), nil
}

// Dropdown renders an option as a select control.
func Dropdown() options.Renderer { return fragmentRenderer{name: "dropdown.tmpl"} }

// Radios renders an option as a radio button group.
func Radios() options.Renderer { return fragmentRenderer{name: "radios.tmpl"} }

// Rectangles renders an option as a row of rectangle buttons.
func Rectangles() options.Renderer { return fragmentRenderer{name: "rectangles.tmpl"} }

// Swatch renders an option as a swatch picker.
func Swatch() options.Renderer { return fragmentRenderer{name: "swatch.tmpl"} }

// ProductListWithImages renders an option as a radio list with images.
func ProductListWithImages() options.Renderer {
	return fragmentRenderer{name: "product_list_images.tmpl"}
}

// Registry returns the dispatch table from option type to renderer. Plain
// product lists reuse the radio group control; types outside this table are
// not rendered at all.
func Registry() map[catalog.OptionType]options.Renderer {
	return map[catalog.OptionType]options.Renderer{
		catalog.TypeDropdown:              Dropdown(),
		catalog.TypeRadioButtons:          Radios(),
		catalog.TypeRectangles:            Rectangles(),
		catalog.TypeSwatch:                Swatch(),
		catalog.TypeProductList:           Radios(),
		catalog.TypeProductListWithImages: ProductListWithImages(),
	}
}

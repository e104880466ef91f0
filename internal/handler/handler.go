// Package handler serves the storefront's HTTP surface: the server-rendered
// product page and the variant table JSON used by client-side scripts.
package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/varko/storefront-options/internal/catalog"
	"github.com/varko/storefront-options/internal/options"
)

//go:embed templates/*.tmpl
var pageFS embed.FS

// pageView is the template context for the product page. Option fragments
// arrive pre-rendered and pre-escaped from the option renderers; the variant
// table is embedded as a JSON document for client-side selection logic.
type pageView struct {
	Product      *catalog.Product
	Options      []template.HTML
	VariantsJSON template.JS
}

// Handler renders product pages from the catalog through the options
// component.
type Handler struct {
	catalog   catalog.Repository
	component *options.Component
	page      *template.Template
}

// New builds a Handler over the given catalog and options component.
func New(repo catalog.Repository, component *options.Component) *Handler {
	return &Handler{
		catalog:   repo,
		component: component,
		page:      template.Must(template.ParseFS(pageFS, "templates/*.tmpl")),
	}
}

// Register attaches the handler's routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /product/{id}", h.ProductPage)
	mux.HandleFunc("GET /product/{id}/options.json", h.VariantsJSON)
}

// ProductPage renders the full product page for GET /product/{id}. The
// variant_id query parameter selects which variant's option values come
// pre-selected; an absent or unknown id leaves the catalog defaults.
func (h *Handler) ProductPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, ok := h.viewData(w, r)
	if !ok {
		return
	}

	view := pageView{
		Product:      data.Product,
		Options:      make([]template.HTML, len(data.Options)),
		VariantsJSON: template.JS(options.EncodeVariants(data.Variants)),
	}
	for i, fragment := range data.Options {
		view.Options[i] = template.HTML(fragment)
	}

	// Render to a buffer first so template errors become a clean 500
	// instead of a half-written page.
	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, "product.tmpl", view); err != nil {
		zctx.From(ctx).Error("render product page",
			zap.Int64("product_id", data.Product.ID),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// VariantsJSON serves the normalized variant table alone, for pages that
// hydrate the options client-side.
func (h *Handler) VariantsJSON(w http.ResponseWriter, r *http.Request) {
	data, ok := h.viewData(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(options.EncodeVariants(data.Variants))
}

// viewData resolves the product addressed by the path and runs the options
// pipeline for it. On failure it writes the error response and reports
// ok=false.
func (h *Handler) viewData(w http.ResponseWriter, r *http.Request) (options.ViewData, bool) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		http.NotFound(w, r)
		return options.ViewData{}, false
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.NotFound(w, r)
			return options.ViewData{}, false
		}
		zctx.From(ctx).Error("load product",
			zap.Int64("product_id", id),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return options.ViewData{}, false
	}

	return h.component.Data(ctx, product, SanitizedIntParam(r, "variant_id")), true
}
